package component

// TransformComponent is the world-space pose in pixel units
type TransformComponent struct {
	X, Y     float64
	Rotation float64
}
