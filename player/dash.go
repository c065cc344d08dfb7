package player

import (
	"time"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/input"
)

// DashStatus is the phase of the dash ability.
type DashStatus int

const (
	DashAvailable DashStatus = iota
	DashDashing
	DashRecharging
)

func (s DashStatus) String() string {
	switch s {
	case DashAvailable:
		return "available"
	case DashDashing:
		return "dashing"
	case DashRecharging:
		return "recharging"
	default:
		return "unknown"
	}
}

const (
	dashShakeDuration  = 80 * time.Millisecond
	dashShakeIntensity = 0.007
)

func (p *Player) canDash(in input.Intent, inAir, pressingWall bool) bool {
	return inAir && in.DashFresh && in.AnyDirection &&
		p.dash == DashAvailable && p.touchedSinceDash && !pressingWall
}

func (p *Player) startDash(in input.Intent) {
	p.dash = DashDashing
	p.touchedSinceDash = false
	p.dashVX = p.tuning.Dash.SpeedX * in.X.Sign()
	switch {
	case in.Up:
		p.dashVY = -p.tuning.Dash.SpeedY
	case in.Down:
		p.dashVY = p.tuning.Dash.SpeedY
	default:
		p.dashVY = 0
	}

	p.body.SetIgnoreGravity(true)
	p.body.SetVelocity(p.dashVX, p.dashVY)
	p.fx.ShakeCamera(dashShakeDuration, dashShakeIntensity)
	p.fx.EmitTrail(true)
	p.fx.PlaySound(Sound{
		Key:    SoundJump,
		Volume: float64(common.RandomInRange(p.rng, 7, 9)) / 10,
		Detune: common.RandomInRange(p.rng, 210, 380),
	})

	p.clock.After(p, p.tuning.Dash.Duration, p.endDash)
}

func (p *Player) endDash() {
	if p.cleanedUp || p.Dead() {
		return
	}
	p.dash = DashRecharging
	p.dashVX, p.dashVY = 0, 0
	p.fx.EmitTrail(false)
	p.body.SetIgnoreGravity(false)

	vx, vy := p.body.Velocity()
	boost := p.tuning.Dash.EndBoost
	p.body.SetVelocity(vx*boost, vy*boost)

	p.clock.After(p, p.tuning.Dash.Cooldown, func() {
		p.dash = DashAvailable
	})
}
