package component

import "time"

type JumpPad struct {
	// Angle is the pad's rotation in degrees; 0 launches straight up.
	Angle float64
	Force float64
	// Rearm is how long the pad ignores the player after a launch.
	Rearm time.Duration
	// ReadyAt is the clock time the pad fires again.
	ReadyAt time.Duration
}

var JumpPadComponent = NewComponent[JumpPad]("jump_pad")
