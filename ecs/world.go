package ecs

import (
	"fmt"

	"github.com/milk9111/skyhop/ecs/component"
)

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

func NewWorld() *World {
	return &World{stores: map[component.ComponentID]store{}}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := 1; i < len(w.entities.gens); i++ {
		if e, ok := w.entities.entity(entityID(i)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], v *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: add %s to %s", component.ErrEntityNotAlive, kind, e)
	}
	storeFor(w, kind, true).set(e.id(), v)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return storeFor(w, kind, false).get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).has(e.id())
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	set := storeFor(w, kind, false)
	if set == nil {
		return false
	}
	return set.remove(e.id())
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clear destroys every entity and drops pending events.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range Entities(w) {
		DestroyEntity(w, e)
	}
	w.events.flush()
}
