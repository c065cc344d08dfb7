package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/physics"
)

// PhysicsSystem steps the space and tags every trigger the player entered
// during the step.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.world == nil {
		return
	}

	s.world.Step(w.Delta())

	for _, key := range s.world.DrainTriggers() {
		e := ecs.Entity(key)
		if !w.IsAlive(e) || !ecs.Has(w, e, component.TriggerComponent) {
			continue
		}
		if err := ecs.Add(w, e, component.TriggeredComponent, component.Triggered{}); err != nil {
			panic("physics system: mark triggered: " + err.Error())
		}
	}
}
