// Package fx holds presentation state driven by gween tweens: camera
// follow and shake, sound fades, the jump squash and the health bar.
package fx

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/wallkick/common"
)

// followRate is the fraction of the remaining distance the camera closes
// each second.
const followRate = 8.0

// Camera centres a view of ViewW by ViewH on a target, with an optional
// decaying shake.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64

	shake    *gween.Tween
	strength float64
	offX     float64
	offY     float64
	rng      *rand.Rand
}

func NewCamera(viewW, viewH float64, rng *rand.Rand) *Camera {
	if rng == nil {
		rng = rand.New(rand.NewPCG(5, 6))
	}
	return &Camera{ViewW: viewW, ViewH: viewH, rng: rng}
}

// Snap centres the camera on (x, y) at once.
func (c *Camera) Snap(x, y float64) {
	c.X = x - c.ViewW/2
	c.Y = y - c.ViewH/2
}

// Follow eases the camera towards centring (x, y).
func (c *Camera) Follow(x, y float64, dt time.Duration) {
	k := common.Clamp(followRate*dt.Seconds(), 0, 1)
	c.X = common.Lerp(c.X, x-c.ViewW/2, k)
	c.Y = common.Lerp(c.Y, y-c.ViewH/2, k)
}

// Shake starts a shake whose amplitude is intensity times the view size,
// fading to nothing over d. A new shake replaces a running one.
func (c *Camera) Shake(d time.Duration, intensity float64) {
	if d <= 0 || intensity <= 0 {
		return
	}
	c.shake = gween.New(float32(intensity), 0, float32(d.Seconds()), ease.OutQuad)
}

func (c *Camera) Shaking() bool {
	return c.shake != nil
}

// Update advances the shake and picks this frame's offset.
func (c *Camera) Update(dt time.Duration) {
	if c.shake == nil {
		c.offX, c.offY = 0, 0
		return
	}
	strength, done := c.shake.Update(float32(dt.Seconds()))
	c.strength = float64(strength)
	if done {
		c.shake = nil
		c.strength = 0
	}
	c.offX = (c.rng.Float64()*2 - 1) * c.strength * c.ViewW
	c.offY = (c.rng.Float64()*2 - 1) * c.strength * c.ViewH
}

// Offset is the top-left corner of the view including shake.
func (c *Camera) Offset() (x, y float64) {
	return c.X + c.offX, c.Y + c.offY
}
