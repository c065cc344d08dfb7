package main

import (
	"time"

	"github.com/milk9111/wallkick/fx"
	"github.com/milk9111/wallkick/player"
)

const trailLength = 8

type trailPoint struct {
	x, y float64
}

// sceneEffects renders the controller's presentation requests.
type sceneEffects struct {
	sounds *mixer
	camera *fx.Camera
	squash *fx.Squash

	anim  string
	flipX bool

	trailOn bool
	trail   []trailPoint
}

func (e *sceneEffects) PlaySound(s player.Sound) {
	if e.sounds != nil {
		e.sounds.PlaySound(s)
	}
}

func (e *sceneEffects) StopSound(key string, fade time.Duration) {
	if e.sounds != nil {
		e.sounds.StopSound(key, fade)
	}
}

func (e *sceneEffects) PlayAnimation(key string, flipX bool) {
	e.anim = key
	e.flipX = flipX
}

func (e *sceneEffects) Squash() { e.squash.Start() }

func (e *sceneEffects) ShakeCamera(d time.Duration, intensity float64) {
	e.camera.Shake(d, intensity)
}

func (e *sceneEffects) EmitTrail(on bool) { e.trailOn = on }

// record appends the player's position to the trail while it is on and
// lets it fade out otherwise.
func (e *sceneEffects) record(x, y float64) {
	if e.trailOn {
		e.trail = append(e.trail, trailPoint{x, y})
	} else if len(e.trail) > 0 {
		e.trail = e.trail[1:]
	}
	if len(e.trail) > trailLength {
		e.trail = e.trail[len(e.trail)-trailLength:]
	}
}
