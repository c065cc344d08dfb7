package ecs

import "github.com/milk9111/wallkick/ecs/component"

// Typed access goes through a handle; presence checks and removal only
// need the kind.

func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, h, value)
}

// Get returns e's value for h. A stored value of another type reads as
// missing.
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (value T, ok bool) {
	if raw, found := w.GetComponent(e, h); found {
		value, ok = raw.(T)
	}
	return value, ok
}

// Has reports whether e holds every listed kind.
func Has(w *World, e Entity, kinds ...component.Kind) bool {
	if len(kinds) == 0 {
		return false
	}
	for _, k := range kinds {
		if !w.HasComponent(e, k) {
			return false
		}
	}
	return true
}

func Remove(w *World, e Entity, k component.Kind) bool {
	return w.RemoveComponent(e, k)
}

// ForEach calls fn for every live entity holding h's component.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(e Entity, value T)) {
	for _, e := range w.Query(h) {
		if v, ok := Get(w, e, h); ok {
			fn(e, v)
		}
	}
}
