package player

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is wrapped by every Tuning.Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

type FloorTuning struct {
	RunSpeed  float64
	JumpSpeed float64
	// Coyote is how long after leaving the floor a floor jump is still legal.
	Coyote time.Duration
}

type AirTuning struct {
	MaxSpeed float64
	Accel    float64
	Decel    float64
	// Curve is the speed-shaping exponent; 1 is linear.
	Curve float64
	// SuppressedControl scales air acceleration after a wall jump or a jump pad launch.
	SuppressedControl float64
	FallMax           float64
	// ApexBand is the downward speed under which the mid-air pose is shown.
	ApexBand float64
}

type DashTuning struct {
	SpeedX   float64
	SpeedY   float64
	EndBoost float64
	Duration time.Duration
	Cooldown time.Duration
}

type WallJumpTuning struct {
	SpeedX     float64
	SpeedY     float64
	PreserveUp float64
	// ReducedAirControl is how long air control stays suppressed after a wall jump.
	ReducedAirControl time.Duration
	// Coyote is how long after a wall-slide a wall jump is still legal.
	Coyote time.Duration
}

// Tuning is the movement configuration of a player. It is built once per
// level load and never mutated afterwards.
type Tuning struct {
	Floor    FloorTuning
	Air      AirTuning
	Dash     DashTuning
	WallJump WallJumpTuning

	WallSlideSpeed     float64
	JumpReleaseDamping float64
	JumpPadOverride    time.Duration

	Health int
}

func DefaultTuning() Tuning {
	return Tuning{
		Floor: FloorTuning{
			RunSpeed:  336,
			JumpSpeed: 636,
			Coyote:    175 * time.Millisecond,
		},
		Air: AirTuning{
			MaxSpeed:          336,
			Accel:             9,
			Decel:             9,
			Curve:             0.96,
			SuppressedControl: 0.6,
			FallMax:           702,
			ApexBand:          360,
		},
		Dash: DashTuning{
			SpeedX:   690,
			SpeedY:   480,
			EndBoost: 0.55,
			Duration: 250 * time.Millisecond,
			Cooldown: 550 * time.Millisecond,
		},
		WallJump: WallJumpTuning{
			SpeedX:            438,
			SpeedY:            420,
			PreserveUp:        0.53,
			ReducedAirControl: 290 * time.Millisecond,
			Coyote:            250 * time.Millisecond,
		},
		WallSlideSpeed:     9,
		JumpReleaseDamping: 0.9,
		JumpPadOverride:    900 * time.Millisecond,
		Health:             150,
	}
}

// Validate reports the first value that would make the controller misbehave.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"floor run speed", t.Floor.RunSpeed},
		{"floor jump speed", t.Floor.JumpSpeed},
		{"air max speed", t.Air.MaxSpeed},
		{"air curve", t.Air.Curve},
		{"air fall max", t.Air.FallMax},
		{"dash speed x", t.Dash.SpeedX},
		{"dash speed y", t.Dash.SpeedY},
		{"wall jump speed x", t.WallJump.SpeedX},
		{"wall jump speed y", t.WallJump.SpeedY},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"air accel", t.Air.Accel},
		{"air decel", t.Air.Decel},
		{"air apex band", t.Air.ApexBand},
		{"wall slide speed", t.WallSlideSpeed},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"air suppressed control", t.Air.SuppressedControl},
		{"dash end boost", t.Dash.EndBoost},
		{"wall jump preserve up", t.WallJump.PreserveUp},
		{"jump release damping", t.JumpReleaseDamping},
	}
	for _, p := range fractions {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"floor coyote", t.Floor.Coyote},
		{"dash duration", t.Dash.Duration},
		{"dash cooldown", t.Dash.Cooldown},
		{"wall jump reduced air control", t.WallJump.ReducedAirControl},
		{"wall jump coyote", t.WallJump.Coyote},
		{"jump pad override", t.JumpPadOverride},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidTuning, d.name, d.value)
		}
	}

	if t.Health <= 0 {
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalidTuning, t.Health)
	}
	return nil
}
