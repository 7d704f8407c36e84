package component

// Mask is a bitset over the closed set of component kinds
type Mask uint16

const (
	MaskTransform Mask = 1 << iota
	MaskPhysics
	MaskTangible
	MaskDraggable
	MaskRender
	MaskCircuit
	MaskWire

	MaskNone Mask = 0
)

// maskNames is ordered by bit position
var maskNames = [...]string{"transform", "physics", "tangible", "draggable", "render", "circuit", "wire"}

// Has reports whether every bit of other is set in m
func (m Mask) Has(other Mask) bool {
	return m&other == other
}

// Names lists component names present in the mask, in bit order
func (m Mask) Names() []string {
	names := make([]string, 0, len(maskNames))
	for i, name := range maskNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}
