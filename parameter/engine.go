package parameter

import "time"

// Simulation loop timing
const (
	// FrameUpdateInterval is the animation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the measured tick delta after stalls (suspend, debugger)
	MaxFrameDelta = 100 * time.Millisecond

	// CommandQueueSize is the buffered capacity of the scheduler command channel
	CommandQueueSize = 32
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)
