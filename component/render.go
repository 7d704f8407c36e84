package component

// Shape is the primitive a renderer draws for an entity
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeRect
	ShapeLine
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// RenderComponent is presentation-only data consumed by the renderer
// Color is a CSS-style "#rrggbb" hex string or a named color
type RenderComponent struct {
	Shape Shape
	Color string
	Size  float64
}
