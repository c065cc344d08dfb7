package system

import (
	"math"

	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/player"
	"github.com/milk9111/wallkick/timer"
)

const (
	SoundJumpPad = "jump-pad"

	jumpPadVolume = 0.5

	jumpPadUpScale   = 1.11
	jumpPadDownScale = 0.5
	jumpPadSideScale = 0.85
)

// JumpPadVelocity returns the launch velocity of a pad rotated angle
// degrees clockwise from straight up. The angle snaps to the nearest
// multiple of 45, so diagonal pads launch on both axes.
func JumpPadVelocity(angle, force float64) (vx, vy float64) {
	a := int(math.Round(angle/45)) * 45 % 360
	if a < 0 {
		a += 360
	}

	switch a {
	case 45, 90, 135:
		vx = jumpPadSideScale * force
	case 225, 270, 315:
		vx = -jumpPadSideScale * force
	}
	switch a {
	case 315, 0, 45:
		vy = -jumpPadUpScale * force
	case 135, 180, 225:
		vy = jumpPadDownScale * force
	}
	return vx, vy
}

// JumpPadSystem launches the player off every pad it entered this tick.
type JumpPadSystem struct {
	clock  *timer.Clock
	sounds SoundPlayer
}

func NewJumpPadSystem(clock *timer.Clock, sounds SoundPlayer) *JumpPadSystem {
	return &JumpPadSystem{clock: clock, sounds: sounds}
}

func (s *JumpPadSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	p, ok := firstPlayer(w)
	if !ok || p.Dead() || p.CleanedUp() {
		return
	}

	now := s.clock.Now()
	for _, e := range w.Query(component.JumpPadComponent.Kind(), component.TriggeredComponent.Kind()) {
		pad, _ := ecs.Get(w, e, component.JumpPadComponent)
		if now < pad.ReadyAt {
			continue
		}

		p.HitJumpPad(JumpPadVelocity(pad.Angle, pad.Force))
		playSound(s.sounds, player.Sound{Key: SoundJumpPad, Volume: jumpPadVolume})

		pad.ReadyAt = now + pad.Rearm
		if err := ecs.Add(w, e, component.JumpPadComponent, pad); err != nil {
			panic("jump pad system: update pad: " + err.Error())
		}
	}
}
