package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Fixed UI palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg    = tcell.NewRGBColor(40, 42, 58)
	RgbHelpBar     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbFloor       = tcell.NewRGBColor(90, 90, 110)
	RgbLabel       = tcell.NewRGBColor(220, 220, 220)
	RgbModePhysics = tcell.NewRGBColor(100, 150, 255)
	RgbModeCircuit = tcell.NewRGBColor(255, 165, 0)
	RgbRunning     = tcell.NewRGBColor(0, 200, 0)
	RgbPaused      = tcell.NewRGBColor(255, 80, 80)
	RgbFallback    = tcell.NewRGBColor(200, 200, 200)
)

// colorCache memoizes entity color strings, entities share a handful of colors
var colorCache sync.Map

// ParseColor resolves a "#rrggbb" hex string or a W3C color name
// Unknown strings map to RgbFallback
func ParseColor(s string) tcell.Color {
	if c, ok := colorCache.Load(s); ok {
		return c.(tcell.Color)
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		c = RgbFallback
	}
	colorCache.Store(s, c)
	return c
}
