package component

// WireComponent stores endpoint positions captured when the wire was created
// Not linked to the endpoints; moving them afterwards leaves the wire in place
type WireComponent struct {
	StartX, StartY float64
	EndX, EndY     float64
}
