package engine

import (
	"sync"

	"github.com/lixenwraith/labsim/core"
)

// World is the entity store: identity allocation and lookup by id or kind
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	entities *Store[*Entity]
}

// NewWorld creates an empty world whose first entity id is 1
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		entities:     NewStore[*Entity](),
	}
}

// Create allocates the next id, registers an entity without components and returns it
func (w *World) Create(kind core.Kind) *Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++

	e := &Entity{ID: id, Kind: kind}
	w.entities.Set(id, e)
	return e
}

// Get looks up a live entity by id
func (w *World) Get(id core.Entity) (*Entity, bool) {
	return w.entities.Get(id)
}

// FindByKind returns live entities of the given kind in insertion order
func (w *World) FindByKind(kind core.Kind) []*Entity {
	return w.Query().OfKind(kind).Execute()
}

// All returns every live entity in insertion order
// The slice is fresh; the entities it points to are shared
func (w *World) All() []*Entity {
	return w.entities.Values()
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.entities.Count()
}

// Remove deletes an entity; absent ids are ignored
func (w *World) Remove(id core.Entity) {
	w.entities.Remove(id)
}

// Clear removes every entity and restarts id allocation at 1
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.entities.Clear()
}
