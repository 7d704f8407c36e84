package render

import (
	"github.com/lixenwraith/labsim/parameter"
)

// Viewport maps world pixel coordinates onto the terminal grid between the help and status bars
// Axes are scaled independently so the whole world is always visible
type Viewport struct {
	X, Y       int
	Cols, Rows int
	WorldW     float64
	WorldH     float64
}

// NewViewport lays out the world area for a screen of the given size
func NewViewport(screenW, screenH int) Viewport {
	return Viewport{
		X:      0,
		Y:      parameter.HelpBarHeight,
		Cols:   screenW,
		Rows:   screenH - parameter.HelpBarHeight - parameter.StatusBarHeight,
		WorldW: parameter.WorldWidth,
		WorldH: parameter.WorldHeight,
	}
}

// Usable reports whether the grid is large enough to draw the world
func (v Viewport) Usable() bool {
	return v.Cols >= parameter.MinViewportCols && v.Rows >= parameter.MinViewportRows
}

// ToCell converts a world point to a screen cell, ok is false outside the world area
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	col = v.X + int(x/v.WorldW*float64(v.Cols))
	row = v.Y + int(y/v.WorldH*float64(v.Rows))
	return col, row, v.Contains(col, row)
}

// Contains reports whether a screen cell lies inside the world area
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

// Scale converts a world length into cell extents along each axis
func (v Viewport) Scale(d float64) (cols, rows float64) {
	return d / v.WorldW * float64(v.Cols), d / v.WorldH * float64(v.Rows)
}
