package player

import "time"

// Sound keys.
const (
	SoundJump      = "jump"
	SoundRunning   = "running"
	SoundWallSlide = "wall-slide"
)

// Animation keys.
const (
	AnimIdle      = "idle"
	AnimRun       = "run"
	AnimAirRise   = "air-rise"
	AnimAirMid    = "air-mid"
	AnimAirFall   = "air-fall"
	AnimWallSlide = "wallslide"
	AnimDash      = "dash"
)

// Sound is a request to play a cue.
type Sound struct {
	Key    string
	Volume float64
	// Detune is in cents.
	Detune int
	Loop   bool
	// Seek is the start offset into the cue.
	Seek time.Duration
	// FadeIn ramps the volume from zero when non-zero.
	FadeIn time.Duration
}

// Effects receives the presentation requests the controller emits. None of
// them feed back into movement.
type Effects interface {
	PlaySound(s Sound)
	StopSound(key string, fade time.Duration)
	PlayAnimation(key string, flipX bool)
	Squash()
	ShakeCamera(d time.Duration, intensity float64)
	EmitTrail(on bool)
}

// NopEffects discards every request.
type NopEffects struct{}

func (NopEffects) PlaySound(Sound) {}
func (NopEffects) StopSound(string, time.Duration) {}
func (NopEffects) PlayAnimation(string, bool) {}
func (NopEffects) Squash() {}
func (NopEffects) ShakeCamera(time.Duration, float64) {}
func (NopEffects) EmitTrail(bool) {}
