package ecs

import "github.com/milk9111/skyhop/ecs/component"

// entityStore tracks entity generations and recycled ids. Slot 0 is never
// issued so the zero Entity is always invalid.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	if len(s.gens) == 0 {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
	}

	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		id = entityID(len(s.gens))
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id] = true
	s.count++
	return makeEntity(id, s.gens[id])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.alive[id] = false
	s.gens[id]++
	s.free = append(s.free, id)
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(s.gens) {
		return false
	}
	return s.alive[id] && s.gens[id] == e.generation()
}

// entity rebuilds the live handle for a slot id.
func (s *entityStore) entity(id entityID) (Entity, bool) {
	if id == 0 || int(id) >= len(s.gens) || !s.alive[id] {
		return 0, false
	}
	return makeEntity(id, s.gens[id]), true
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if st, ok := w.stores[kind.ID()]; ok {
		set, _ := st.(*sparseSet[T])
		return set
	}
	if !create {
		return nil
	}
	set := &sparseSet[T]{}
	if w.stores == nil {
		w.stores = map[component.ComponentID]store{}
	}
	w.stores[kind.ID()] = set
	return set
}
