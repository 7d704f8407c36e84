package vmath

import "math"

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	dot2 := 2 * DotProduct(velX, velY, normalX, normalY)
	return velX - dot2*normalX, velY - dot2*normalY
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
