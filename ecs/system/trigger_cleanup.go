package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
)

// TriggerCleanupSystem clears trigger hits once every reaction ran.
type TriggerCleanupSystem struct{}

func NewTriggerCleanupSystem() *TriggerCleanupSystem {
	return &TriggerCleanupSystem{}
}

func (s *TriggerCleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.TriggeredComponent.Kind()) {
		ecs.Remove(w, e, component.TriggeredComponent)
	}
}
