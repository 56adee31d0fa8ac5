package ecs

// Store holds one component type, keyed by entity ID. Components live in a
// dense slice so iteration touches contiguous memory; a map resolves IDs to
// dense positions. Removal swaps the last element into the hole, so the
// iteration order is unspecified.
type Store struct {
	index map[int]int
	ids   []int
	vals  []any
}

// Has reports whether id has a component in this store.
func (s *Store) Has(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Get returns the component for id, or nil.
func (s *Store) Get(id int) any {
	if s == nil {
		return nil
	}
	pos, ok := s.index[id]
	if !ok {
		return nil
	}
	return s.vals[pos]
}

// Set inserts or replaces the component for id. IDs below 1 and nil values
// are ignored.
func (s *Store) Set(id int, v any) {
	if s == nil || id <= 0 || v == nil {
		return
	}
	if pos, ok := s.index[id]; ok {
		s.vals[pos] = v
		return
	}
	if s.index == nil {
		s.index = make(map[int]int)
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.vals = append(s.vals, v)
}

// Remove drops the component for id if present.
func (s *Store) Remove(id int) {
	if s == nil {
		return
	}
	pos, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	moved := s.ids[last]
	s.ids[pos] = moved
	s.vals[pos] = s.vals[last]
	s.vals[last] = nil
	s.ids = s.ids[:last]
	s.vals = s.vals[:last]
	delete(s.index, id)
	if pos != last {
		s.index[moved] = pos
	}
}

// IDs returns the dense list of entity IDs with a component in this store.
// The slice is the store's own backing array; callers must not mutate it.
func (s *Store) IDs() []int {
	if s == nil {
		return nil
	}
	return s.ids
}

// Len returns the number of stored components.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}
