package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventCollision reports a resolved contact between two mobile bodies
	// Producer: physics.Strategy | Payload: CollisionPayload
	EventCollision EventType = iota

	// EventPinCollision reports a mobile body resolved against an immobile body
	// Producer: physics.Strategy | Payload: CollisionPayload
	EventPinCollision

	// EventBoundaryBounce reports a body clamped and reflected at a world bound
	// Producer: physics.Strategy | Payload: BouncePayload
	EventBoundaryBounce

	// EventCircuitSolved reports the per-tick series solution
	// Producer: circuit.Strategy | Payload: CircuitPayload
	EventCircuitSolved

	// EventWorldReset is emitted by the engine after the world is cleared
	// Producer: engine.Engine | Payload: nil
	EventWorldReset

	// EventStrategyChanged is emitted by the engine after a strategy swap
	// Producer: engine.Engine | Payload: string (strategy name)
	EventStrategyChanged
)

// String returns a stable name for logs
func (t EventType) String() string {
	switch t {
	case EventCollision:
		return "collision"
	case EventPinCollision:
		return "pin_collision"
	case EventBoundaryBounce:
		return "boundary_bounce"
	case EventCircuitSolved:
		return "circuit_solved"
	case EventWorldReset:
		return "world_reset"
	case EventStrategyChanged:
		return "strategy_changed"
	default:
		return "unknown"
	}
}

// SimEvent is a single queued event stamped with the engine frame that produced it
type SimEvent struct {
	Type    EventType
	Payload any
	Frame   uint64
}

// Handler consumes drained events on the engine goroutine
type Handler func(ev SimEvent)
