package ecs

import (
	"fmt"
	"sort"
	"time"

	"github.com/milk9111/wallkick/ecs/component"
)

var (
	ErrEntityNotAlive = component.ErrEntityNotAlive
	ErrNilComponent   = component.ErrNilComponent
	ErrInvalidKind    = component.ErrInvalidComponentKind
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	delta    time.Duration
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops e and all its components. It reports false when e
// was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Delta is the simulation time the current tick covers.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) SetDelta(dt time.Duration) {
	if w == nil {
		return
	}
	w.delta = dt
}

func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || kind == nil || kind.ID() == 0 {
		return ErrInvalidKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", ErrNilComponent, kind.Name())
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s on %s", ErrEntityNotAlive, kind.Name(), e)
	}
	s := w.stores[kind.ID()]
	if s == nil {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	s.Set(e, value)
	return nil
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.stores[kind.ID()].Remove(e)
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.stores[kind.ID()].Has(e)
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil {
		return nil, false
	}
	return w.stores[kind.ID()].Get(e)
}

// Query returns the live entities that have every listed kind, in slot
// order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store
	var smallest *SparseSet
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s.Len() == 0 {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, k := range kinds {
			if !w.stores[k.ID()].Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-slot entity that has every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
