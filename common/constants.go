package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is the downward acceleration in pixels per second squared.
	Gravity = 1000.0

	TickRate = 60
	// StepDuration is the fixed simulation step at TickRate.
	StepDuration = time.Second / TickRate
)
