package core

// Entity is a unique identifier for an entity
// Allocated monotonically by the world starting at 1; zero is never a live entity
type Entity uint64

// Kind classifies an entity for lookup only, it never dispatches behavior
type Kind uint8

const (
	KindPhysics Kind = iota
	KindCircuit
)

// String returns the lowercase kind name
func (k Kind) String() string {
	switch k {
	case KindPhysics:
		return "physics"
	case KindCircuit:
		return "circuit"
	default:
		return "unknown"
	}
}
