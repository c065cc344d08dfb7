package player

import (
	"time"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/input"
)

const (
	runningVolume     = 0.6
	runningStepCount  = 19
	runningStepLength = 294 * time.Millisecond

	wallSlideVolume  = 0.25
	wallSlideFadeIn  = 300 * time.Millisecond
	wallSlideFadeOut = 200 * time.Millisecond

	// ascendingEpsilon keeps early release from damping a jump that already peaked.
	ascendingEpsilon = 0.6
)

// Move advances the controller by one simulation step. Guards read the
// intent and the contact state of the last physics step; velocity writes
// always start from the body's current velocity.
func (p *Player) Move(dt time.Duration, in input.Intent) {
	if p.cleanedUp {
		return
	}

	c := p.contacts.State()
	onFloor := c.Floor
	inAir := !onFloor
	nearWall := input.None
	switch {
	case c.RightWall:
		nearWall = input.Right
	case c.LeftWall:
		nearWall = input.Left
	}
	pressingWall := in.X != input.None && in.X == nearWall
	wallSlide := inAir && pressingWall

	if onFloor || pressingWall || p.dash == DashDashing || p.jumpPad {
		p.jumping = false
	}

	// coyote clocks run through dashes too
	if onFloor {
		p.timeSinceGrounded = 0
	} else {
		p.timeSinceGrounded += dt
	}
	if wallSlide {
		p.timeSinceWallslide = 0
	} else {
		p.timeSinceWallslide += dt
	}

	if p.dash == DashDashing {
		p.body.SetVelocity(p.dashVX, p.dashVY)
		p.fx.PlayAnimation(AnimDash, p.facingLeft)
		return
	}

	switch in.X {
	case input.Left:
		p.facingLeft = true
	case input.Right:
		p.facingLeft = false
	}

	p.moveHorizontal(in, onFloor)
	anim := p.pose(in, onFloor)

	if onFloor && in.X != input.None {
		p.startRunning()
	}
	if inAir || in.X == input.None {
		p.stopRunning()
	}

	// floor jump
	floorJump := p.timeSinceGrounded < p.tuning.Floor.Coyote && in.JumpFresh && !p.jumping
	if floorJump {
		p.jumping = true
		vx, _ := p.body.Velocity()
		p.body.SetVelocity(vx, -p.tuning.Floor.JumpSpeed)
		p.fx.Squash()
		p.playJumpSound()
	}

	// wall-slide
	if wallSlide {
		vx, vy := p.body.Velocity()
		if vy >= p.tuning.WallSlideSpeed {
			p.body.SetVelocity(vx, p.tuning.WallSlideSpeed)
		}
		p.lastWallSide = nearWall
		anim = AnimWallSlide
		p.startSliding()
	} else {
		p.stopSliding()
	}

	// wall jump
	wallJump := inAir && in.JumpFresh && !floorJump &&
		(nearWall != input.None || p.timeSinceWallslide < p.tuning.WallJump.Coyote)
	if wallJump {
		p.wallJump(nearWall)
	}

	_, vy := p.body.Velocity()
	if inAir && vy > p.tuning.Air.FallMax {
		vx, _ := p.body.Velocity()
		p.body.SetVelocity(vx, p.tuning.Air.FallMax)
	}

	vx, vy := p.body.Velocity()
	if p.jumping && !in.Jump && vy < -ascendingEpsilon {
		p.body.SetVelocity(vx, vy*p.tuning.JumpReleaseDamping)
	}

	if onFloor || wallSlide || wallJump {
		p.touchedSinceDash = true
	}

	if p.canDash(in, inAir, pressingWall) {
		p.startDash(in)
		anim = AnimDash
	}

	p.fx.PlayAnimation(anim, p.facingLeft)
}

// moveHorizontal snaps to run speed on the floor and shapes speed in the
// air. A jump pad launch keeps the body out of the snap until its window
// closes.
func (p *Player) moveHorizontal(in input.Intent, onFloor bool) {
	vx, vy := p.body.Velocity()
	if onFloor && !p.jumpPad {
		p.body.SetVelocity(p.tuning.Floor.RunSpeed*in.X.Sign(), vy)
		return
	}

	air := p.tuning.Air
	accel, decel := air.Accel, air.Decel
	if p.jumpPad || p.recentlyWallJumped {
		accel *= air.SuppressedControl
		decel = 0
	}
	target := air.MaxSpeed * in.X.Sign()
	if a := ShapeSpeed(vx, target, accel, decel, air.Curve); a != 0 {
		p.body.ApplyForce(a*p.body.Mass(), 0)
	}
}

func (p *Player) pose(in input.Intent, onFloor bool) string {
	if onFloor {
		if in.X != input.None {
			return AnimRun
		}
		return AnimIdle
	}
	_, vy := p.body.Velocity()
	switch {
	case vy < 0:
		return AnimAirRise
	case vy < p.tuning.Air.ApexBand:
		return AnimAirMid
	default:
		return AnimAirFall
	}
}

func (p *Player) wallJump(nearWall input.XDirection) {
	side := nearWall
	if side == input.None {
		side = p.lastWallSide
	}

	wj := p.tuning.WallJump
	_, vy := p.body.Velocity()
	up := -wj.SpeedY
	if vy < 0 {
		up += vy * wj.PreserveUp
	}
	p.body.SetVelocity(-wj.SpeedX*side.Sign(), up)

	// push the slide clock out of the coyote window so one slide buys one jump
	p.timeSinceWallslide += wj.Coyote

	p.recentlyWallJumped = true
	p.clock.Cancel(p.wallJumpTimer)
	p.wallJumpTimer = p.clock.After(p, wj.ReducedAirControl, func() {
		p.recentlyWallJumped = false
		p.wallJumpTimer = 0
	})
	p.playJumpSound()
}

func (p *Player) playJumpSound() {
	p.fx.PlaySound(Sound{
		Key:    SoundJump,
		Volume: float64(common.RandomInRange(p.rng, 8, 10)) / 10,
		Detune: common.RandomInRange(p.rng, -120, 170),
	})
}

// startRunning starts the footstep loop at a random step so restarts do
// not sound identical.
func (p *Player) startRunning() {
	if p.runningLoop {
		return
	}
	p.runningLoop = true
	step := common.RandomInRange(p.rng, 0, runningStepCount-1)
	p.fx.PlaySound(Sound{
		Key:    SoundRunning,
		Volume: runningVolume,
		Loop:   true,
		Seek:   time.Duration(step) * runningStepLength,
	})
}

func (p *Player) stopRunning() {
	if !p.runningLoop {
		return
	}
	p.runningLoop = false
	p.fx.StopSound(SoundRunning, 0)
}

func (p *Player) startSliding() {
	if p.sliding {
		return
	}
	p.sliding = true
	p.fx.PlaySound(Sound{
		Key:    SoundWallSlide,
		Volume: wallSlideVolume,
		Loop:   true,
		FadeIn: wallSlideFadeIn,
	})
}

func (p *Player) stopSliding() {
	if !p.sliding {
		return
	}
	p.sliding = false
	p.fx.StopSound(SoundWallSlide, wallSlideFadeOut)
}
