package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.InputComponent.Kind()) {
		p, _ := ecs.Get(w, e, component.PlayerComponent)
		in, _ := ecs.Get(w, e, component.InputComponent)
		if p.Controller == nil {
			continue
		}
		p.Controller.Move(w.Delta(), in.Intent)
	}
}
