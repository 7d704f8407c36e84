package component

// DraggableComponent flags user interaction; simulation never reads it
type DraggableComponent struct {
	Selected bool
}
