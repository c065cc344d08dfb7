package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
)

type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, ok := firstPlayer(w)
	if !ok {
		return
	}
	for _, e := range w.Query(component.HazardComponent.Kind(), component.TriggeredComponent.Kind()) {
		h, _ := ecs.Get(w, e, component.HazardComponent)
		p.Damage(h.Damage)
	}
}
