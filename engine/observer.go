package engine

import "github.com/google/uuid"

// Snapshot is the engine state handed to observers after each tick and on reset
// Entities is a borrowed view: valid for the duration of Notify and must not be mutated
type Snapshot struct {
	Run      uuid.UUID
	Frame    uint64
	Strategy string
	Running  bool
	Entities []*Entity
}

// Observer receives a snapshot after every tick, seed and reset
// Implementations must skip entities missing the components they draw
type Observer interface {
	Notify(snap Snapshot)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(snap Snapshot)

// Notify calls f
func (f ObserverFunc) Notify(snap Snapshot) {
	f(snap)
}
