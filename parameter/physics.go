package parameter

// Gravity is the downward acceleration in pixels/s², ~10x real-world since world units are pixels
const Gravity = 98.0

// World bounds in pixels; only the floor and the two side walls are enforced
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0

	BoundFloor     = 550.0
	BoundRightWall = 800.0
	BoundLeftWall  = 10.0
)

// Restitution is the collision elasticity; 1.0 loses no kinetic energy
const Restitution = 1.0

// InitialVelocityX is the horizontal velocity bias given to new mobile bodies
const InitialVelocityX = -50.0

// DefaultMass is used when a body is created without an explicit mass
const DefaultMass = 1.0
