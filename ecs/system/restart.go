package system

import (
	"log"
	"time"

	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/timer"
)

// DeathRestartDelay is how long a dead player lingers before the level
// restarts.
const DeathRestartDelay = 1200 * time.Millisecond

// RestartSystem cleans up a dead player and asks for a new level once
// the death delay ran out. A fresh escape press restarts at once.
type RestartSystem struct {
	clock   *timer.Clock
	delay   time.Duration
	restart func()

	requested bool
}

func NewRestartSystem(clock *timer.Clock, delay time.Duration, restart func()) *RestartSystem {
	return &RestartSystem{clock: clock, delay: delay, restart: restart}
}

// Requested reports whether a restart was already asked for.
func (s *RestartSystem) Requested() bool {
	return s != nil && s.requested
}

func (s *RestartSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	e, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pc, _ := ecs.Get(w, e, component.PlayerComponent)
	p := pc.Controller
	if p == nil {
		return
	}

	if in, ok := ecs.Get(w, e, component.InputComponent); ok && in.Intent.EscapeFresh {
		s.request()
		return
	}

	if p.Dead() && !p.CleanedUp() {
		p.CleanUp()
		x, y := p.Position()
		log.Printf("level: player died at (%.0f, %.0f), restarting in %s", x, y, s.delay)
		s.clock.After(s, s.delay, s.request)
	}
}

func (s *RestartSystem) request() {
	if s.requested {
		return
	}
	s.requested = true
	if s.restart != nil {
		s.restart()
	}
}
