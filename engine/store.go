package engine

import (
	"sync"

	"github.com/lixenwraith/labsim/core"
)

// Store is a generic container keyed by entity
// Map gives O(1) lookup; the entity slice keeps insertion order for iteration
type Store[T any] struct {
	mu       sync.RWMutex
	items    map[core.Entity]T
	entities []core.Entity
}

// NewStore creates a new store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items:    make(map[core.Entity]T),
		entities: make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates the value for an entity
// Updating an existing entity keeps its original position in iteration order
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.items[e] = val
}

// Get retrieves the value for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.items[e]
	return val, ok
}

// Has checks if entity is present
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[e]
	return ok
}

// Remove deletes an entity, returns false if absent
// Order of the remaining entities is preserved
func (s *Store[T]) Remove(e core.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[e]; !exists {
		return false
	}
	delete(s.items, e)
	for i, entity := range s.entities {
		if entity == e {
			copy(s.entities[i:], s.entities[i+1:])
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
	return true
}

// All returns a copy of stored entity ids in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Values returns stored values in insertion order
func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		result = append(result, s.items[e])
	}
	return result
}

// Count returns number of stored entities
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all entries
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}
