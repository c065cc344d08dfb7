package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader ramps a volume between two levels.
type Fader struct {
	tween  *gween.Tween
	volume float64
	done   bool
}

// NewFader fades from one volume to another over d. A zero d jumps
// straight to the target.
func NewFader(from, to float64, d time.Duration) *Fader {
	if d <= 0 {
		return &Fader{volume: to, done: true}
	}
	return &Fader{
		tween:  gween.New(float32(from), float32(to), float32(d.Seconds()), ease.Linear),
		volume: from,
	}
}

// Update advances the fade and returns the current volume.
func (f *Fader) Update(dt time.Duration) float64 {
	if f.done {
		return f.volume
	}
	v, done := f.tween.Update(float32(dt.Seconds()))
	f.volume = float64(v)
	f.done = done
	return f.volume
}

func (f *Fader) Volume() float64 { return f.volume }
func (f *Fader) Done() bool      { return f.done }
