package event

import "github.com/lixenwraith/labsim/core"

// Wall identifies which world bound was hit
type Wall uint8

const (
	WallFloor Wall = iota
	WallRight
	WallLeft
)

// String returns the wall name
func (w Wall) String() string {
	switch w {
	case WallFloor:
		return "floor"
	case WallRight:
		return "right"
	case WallLeft:
		return "left"
	default:
		return "unknown"
	}
}

// CollisionPayload describes one resolved contact
// Impulse is the magnitude applied along the contact normal
type CollisionPayload struct {
	A, B        core.Entity
	Penetration float64
	Impulse     float64
}

// BouncePayload describes one boundary reflection
type BouncePayload struct {
	Entity core.Entity
	Wall   Wall
	Speed  float64
}

// CircuitPayload carries the series solution of one tick
type CircuitPayload struct {
	TotalVoltage    float64
	TotalResistance float64
	Current         float64
}
