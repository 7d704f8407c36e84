package parameter

// Terminal layout
const (
	// StatusBarHeight is the number of rows reserved at the bottom for status text
	StatusBarHeight = 1

	// HelpBarHeight is the number of rows reserved at the top for key hints
	HelpBarHeight = 1

	// MinViewportCols and MinViewportRows below which only a resize hint is drawn
	MinViewportCols = 20
	MinViewportRows = 6
)

// Glyphs
const (
	GlyphBody     = '●'
	GlyphPin      = '◆'
	GlyphRectEdge = '█'
	GlyphWire     = '·'
	GlyphFloor    = '▔'
)
