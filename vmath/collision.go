package vmath

// Contact describes the overlap between two circles
// Normal points from the first circle toward the second
type Contact struct {
	NormalX, NormalY float64
	Distance         float64
	Penetration      float64
}

// CircleContact tests two circles for overlap
// Returns false when separated or touching, and when centers coincide (normal undefined)
func CircleContact(ax, ay, ar, bx, by, br float64) (Contact, bool) {
	if !CirclesOverlap(ax, ay, ar, bx, by, br) {
		return Contact{}, false
	}
	dist := Distance(ax, ay, bx, by)
	sum := ar + br
	if dist >= sum || dist == 0 {
		return Contact{Distance: dist}, false
	}
	nx, ny := Normalize2D(bx-ax, by-ay)
	return Contact{
		NormalX:     nx,
		NormalY:     ny,
		Distance:    dist,
		Penetration: sum - dist,
	}, true
}

// CirclesOverlap reports whether distance between centers is less than the sum of radii
// Squared comparison, no sqrt
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return MagnitudeSq(bx-ax, by-ay) < (ar+br)*(ar+br)
}
