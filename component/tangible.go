package component

// TangibleComponent is a circular collision envelope centered on the transform
type TangibleComponent struct {
	Radius float64
}
