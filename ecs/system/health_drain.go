package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
)

// HealthDrainSystem wears the player down over time.
type HealthDrainSystem struct{}

func NewHealthDrainSystem() *HealthDrainSystem { return &HealthDrainSystem{} }

func (s *HealthDrainSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.HealthDrainComponent.Kind()) {
		p, _ := ecs.Get(w, e, component.PlayerComponent)
		drain, _ := ecs.Get(w, e, component.HealthDrainComponent)
		if p.Controller == nil || p.Controller.Dead() || p.Controller.CleanedUp() || drain.Interval <= 0 {
			continue
		}

		drain.Elapsed += w.Delta()
		for drain.Elapsed >= drain.Interval && !p.Controller.Dead() {
			drain.Elapsed -= drain.Interval
			p.Controller.Damage(drain.Amount)
		}
		if err := ecs.Add(w, e, component.HealthDrainComponent, drain); err != nil {
			panic("health drain system: update drain: " + err.Error())
		}
	}
}
