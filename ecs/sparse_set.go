package ecs

// store is the type-erased view of a component sparse set the world needs
// for entity teardown.
type store interface {
	has(id entityID) bool
	remove(id entityID) bool
	ids() []entityID
	len() int
}

// sparseSet keeps components densely packed and indexed by entity id.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	sparse []int32 // id -> dense index + 1, 0 = absent
}

func (s *sparseSet[T]) has(id entityID) bool {
	if s == nil || int(id) >= len(s.sparse) {
		return false
	}
	return s.sparse[id] != 0
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id]-1], true
}

func (s *sparseSet[T]) set(id entityID, v *T) {
	if int(id) >= len(s.sparse) {
		grown := make([]int32, int(id)+1+len(s.sparse)/2)
		copy(grown, s.sparse)
		s.sparse = grown
	}
	if idx := s.sparse[id]; idx != 0 {
		s.values[idx-1] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id] = int32(len(s.dense))
}

func (s *sparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id] - 1
	last := int32(len(s.dense) - 1)
	lastID := s.dense[last]

	s.dense[idx] = lastID
	s.values[idx] = s.values[last]
	s.sparse[lastID] = idx + 1

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id] = 0
	return true
}

// ids returns a snapshot so callers may destroy entities while iterating.
func (s *sparseSet[T]) ids() []entityID {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	out := make([]entityID, len(s.dense))
	copy(out, s.dense)
	return out
}

func (s *sparseSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
