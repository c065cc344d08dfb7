package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/input"
)

// InputSystem resolves the keyboard into an intent for every player.
type InputSystem struct {
	keys     input.KeyState
	bindings input.Bindings
}

func NewInputSystem(keys input.KeyState, bindings input.Bindings) *InputSystem {
	return &InputSystem{keys: keys, bindings: bindings}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	intent := input.Resolve(s.keys, s.bindings)
	for _, e := range w.Query(component.PlayerComponent.Kind()) {
		if err := ecs.Add(w, e, component.InputComponent, component.Input{Intent: intent}); err != nil {
			panic("input system: update input: " + err.Error())
		}
	}
}
