// Package player implements the platformer movement controller: running,
// variable-height jumps with a coyote window, wall-slides, wall-jumps and an
// air dash with a cooldown.
//
// The controller owns no engine or presentation state. It drives a Body,
// reads Contacts, schedules its ability windows on a timer.Clock and sends
// every sound, animation and camera request to Effects.
package player

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/wallkick/input"
	"github.com/milk9111/wallkick/timer"
)

const (
	damageShakeThreshold = 5
	damageShakeDuration  = 100 * time.Millisecond
	damageShakeIntensity = 0.04
)

type Player struct {
	body     Body
	contacts Contacts
	clock    *timer.Clock
	fx       Effects
	tuning   Tuning
	rng      *rand.Rand

	health    int
	cleanedUp bool

	dash             DashStatus
	dashVX, dashVY   float64
	touchedSinceDash bool

	jumping            bool
	timeSinceGrounded  time.Duration
	timeSinceWallslide time.Duration
	lastWallSide       input.XDirection

	recentlyWallJumped bool
	wallJumpTimer      timer.Handle

	jumpPad      bool
	jumpPadTimer timer.Handle

	facingLeft  bool
	runningLoop bool
	sliding     bool
}

// New creates a player driving body. fx and rng may be nil.
func New(body Body, contacts Contacts, clock *timer.Clock, fx Effects, tuning Tuning, rng *rand.Rand) (*Player, error) {
	if body == nil {
		return nil, fmt.Errorf("player: new: nil body")
	}
	if contacts == nil {
		return nil, fmt.Errorf("player: new: nil contacts")
	}
	if clock == nil {
		return nil, fmt.Errorf("player: new: nil clock")
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("player: new: %w", err)
	}
	if fx == nil {
		fx = NopEffects{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	return &Player{
		body:               body,
		contacts:           contacts,
		clock:              clock,
		fx:                 fx,
		tuning:             tuning,
		rng:                rng,
		health:             tuning.Health,
		dash:               DashAvailable,
		touchedSinceDash:   true,
		timeSinceGrounded:  tuning.Floor.Coyote,
		timeSinceWallslide: tuning.WallJump.Coyote,
	}, nil
}

func (p *Player) Tuning() Tuning { return p.tuning }

func (p *Player) Health() int { return p.health }

// Dead reports whether health ran out.
func (p *Player) Dead() bool { return p.health <= 0 }

func (p *Player) CleanedUp() bool { return p.cleanedUp }

func (p *Player) DashStatus() DashStatus { return p.dash }

// TouchedSurfaceSinceLastDash reports whether a new dash is armed.
func (p *Player) TouchedSurfaceSinceLastDash() bool { return p.touchedSinceDash }

func (p *Player) RecentlyWallJumped() bool { return p.recentlyWallJumped }

func (p *Player) JumpPadActive() bool { return p.jumpPad }

// Jumping reports whether a floor jump is still rising under player control.
func (p *Player) Jumping() bool { return p.jumping }

func (p *Player) FacingLeft() bool { return p.facingLeft }

func (p *Player) Position() (x, y float64) { return p.body.Position() }

func (p *Player) Velocity() (x, y float64) { return p.body.Velocity() }

// Damage removes health. Hits above a small threshold shake the camera.
func (p *Player) Damage(amount int) {
	if amount <= 0 || p.cleanedUp {
		return
	}
	if amount > damageShakeThreshold {
		p.fx.ShakeCamera(damageShakeDuration, damageShakeIntensity)
	}
	p.health -= amount
}

func (p *Player) Heal(amount int) {
	if amount <= 0 || p.cleanedUp || p.Dead() {
		return
	}
	p.health += amount
}

// HitJumpPad imposes a launch velocity that movement input cannot override
// until the pad window closes. A launch also re-arms the dash.
func (p *Player) HitJumpPad(vx, vy float64) {
	if p.cleanedUp {
		return
	}
	p.jumpPad = true
	p.touchedSinceDash = true
	p.body.SetVelocity(vx, vy)

	p.clock.Cancel(p.jumpPadTimer)
	p.jumpPadTimer = p.clock.After(p, p.tuning.JumpPadOverride, func() {
		p.jumpPad = false
		p.jumpPadTimer = 0
	})
}

// CleanUp stops the player's looping effects and cancels every pending
// ability timer. It is safe to call more than once.
func (p *Player) CleanUp() {
	if p.cleanedUp {
		return
	}
	p.cleanedUp = true
	p.clock.CancelOwner(p)
	p.wallJumpTimer = 0
	p.jumpPadTimer = 0

	if p.runningLoop {
		p.fx.StopSound(SoundRunning, 0)
		p.runningLoop = false
	}
	if p.sliding {
		p.fx.StopSound(SoundWallSlide, wallSlideFadeOut)
		p.sliding = false
	}
	if p.dash == DashDashing {
		p.body.SetIgnoreGravity(false)
	}
	p.fx.EmitTrail(false)
}
