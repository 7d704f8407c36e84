package component

// PhysicsComponent holds linear dynamics state
// FX, FY accumulate force within a single tick and are cleared at its end
// Mass must be positive; integration divides by it unguarded
type PhysicsComponent struct {
	Mass   float64
	VX, VY float64
	FX, FY float64
}
