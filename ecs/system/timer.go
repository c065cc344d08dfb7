package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/timer"
)

// TimerSystem advances the level clock, firing any ability timers that
// came due.
type TimerSystem struct {
	clock *timer.Clock
}

func NewTimerSystem(clock *timer.Clock) *TimerSystem {
	return &TimerSystem{clock: clock}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.clock.Advance(w.Delta())
}
