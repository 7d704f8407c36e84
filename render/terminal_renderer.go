package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/parameter"
	"github.com/lixenwraith/labsim/status"
)

// DefaultHelp lists the shell key bindings
const DefaultHelp = "space start/pause  n step  r reset  p physics  c circuit  1-9 level  q quit"

// TerminalRenderer draws engine snapshots to a tcell screen
// It is an engine.Observer and runs on the engine loop goroutine
type TerminalRenderer struct {
	screen tcell.Screen
	status *status.Registry

	help    string
	level   string
	message string

	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a renderer; reg may be nil to hide metrics
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		status:       reg,
		help:         DefaultHelp,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground),
	}
}

// SetHelp replaces the top bar text
func (r *TerminalRenderer) SetHelp(text string) { r.help = text }

// SetLevel names the loaded level in the status bar
func (r *TerminalRenderer) SetLevel(name string) { r.level = name }

// SetMessage shows a transient note in the status bar until replaced
func (r *TerminalRenderer) SetMessage(msg string) { r.message = msg }

// Notify implements engine.Observer
func (r *TerminalRenderer) Notify(s engine.Snapshot) {
	r.RenderFrame(s)
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(s engine.Snapshot) {
	r.screen.SetStyle(r.defaultStyle)
	r.screen.Clear()

	w, h := r.screen.Size()
	vp := NewViewport(w, h)

	r.drawHelpBar(w)
	if !vp.Usable() {
		r.drawText(0, vp.Y, "terminal too small", r.defaultStyle.Foreground(RgbPaused))
		r.screen.Show()
		return
	}

	if s.Strategy == "physics" {
		r.drawFloor(vp)
	}

	// Wires under elements, elements under bodies
	for _, e := range s.Entities {
		if e.Render != nil && e.Render.Shape == component.ShapeLine {
			r.drawWire(vp, e)
		}
	}
	for _, e := range s.Entities {
		if e.Render != nil && e.Render.Shape == component.ShapeRect {
			r.drawElement(vp, e)
		}
	}
	for _, e := range s.Entities {
		if e.Render != nil && e.Render.Shape == component.ShapeCircle {
			r.drawDisc(vp, e)
		}
	}

	r.drawStatusBar(s, w, h)
	r.screen.Show()
}

func (r *TerminalRenderer) drawHelpBar(width int) {
	style := r.defaultStyle.Foreground(RgbHelpBar)
	r.drawText(0, 0, truncate(r.help, width), style)
}

func (r *TerminalRenderer) drawFloor(vp Viewport) {
	_, row, ok := vp.ToCell(0, parameter.BoundFloor)
	if !ok {
		return
	}
	// Floor glyph sits on the row below the clamped body centers
	row++
	if !vp.Contains(vp.X, row) {
		return
	}
	style := r.defaultStyle.Foreground(RgbFloor)
	for col := vp.X; col < vp.X+vp.Cols; col++ {
		r.screen.SetContent(col, row, parameter.GlyphFloor, nil, style)
	}
}

// drawDisc fills the ellipse covering the body's radius in cell space
func (r *TerminalRenderer) drawDisc(vp Viewport, e *engine.Entity) {
	if e.Transform == nil {
		return
	}
	cx, cy, ok := vp.ToCell(e.Transform.X, e.Transform.Y)
	if !ok {
		return
	}

	glyph := parameter.GlyphBody
	if e.Physics == nil {
		glyph = parameter.GlyphPin
	}
	style := r.defaultStyle.Foreground(ParseColor(e.Render.Color))

	rx, ry := vp.Scale(e.Render.Size)
	if rx < 1 || ry < 1 {
		r.screen.SetContent(cx, cy, glyph, nil, style)
		return
	}

	ix, iy := int(rx), int(ry)
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			if vp.Contains(cx+dx, cy+dy) {
				r.screen.SetContent(cx+dx, cy+dy, glyph, nil, style)
			}
		}
	}
}

// drawElement outlines a circuit element and writes its label underneath
func (r *TerminalRenderer) drawElement(vp Viewport, e *engine.Entity) {
	if e.Transform == nil {
		return
	}
	cx, cy, ok := vp.ToCell(e.Transform.X, e.Transform.Y)
	if !ok {
		return
	}
	style := r.defaultStyle.Foreground(ParseColor(e.Render.Color))

	hw, hh := vp.Scale(e.Render.Size / 2)
	x0, x1 := cx-int(hw), cx+int(hw)
	y0, y1 := cy-int(hh), cy+int(hh)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			if row != y0 && row != y1 && col != x0 && col != x1 {
				continue
			}
			if vp.Contains(col, row) {
				r.screen.SetContent(col, row, parameter.GlyphRectEdge, nil, style)
			}
		}
	}

	if e.Circuit == nil {
		return
	}
	label := ElementLabel(e.Circuit)
	r.drawText(cx-len([]rune(label))/2, y1+1, label, r.defaultStyle.Foreground(RgbLabel))
}

// drawWire plots the wire snapshot with Bresenham's line algorithm
func (r *TerminalRenderer) drawWire(vp Viewport, e *engine.Entity) {
	if e.Wire == nil {
		return
	}
	x0, y0, _ := vp.ToCell(e.Wire.StartX, e.Wire.StartY)
	x1, y1, _ := vp.ToCell(e.Wire.EndX, e.Wire.EndY)
	style := r.defaultStyle.Foreground(ParseColor(e.Render.Color))

	Line(x0, y0, x1, y1, func(col, row int) {
		if vp.Contains(col, row) {
			r.screen.SetContent(col, row, parameter.GlyphWire, nil, style)
		}
	})
}

func (r *TerminalRenderer) drawStatusBar(s engine.Snapshot, width, height int) {
	row := height - parameter.StatusBarHeight
	bg := r.defaultStyle.Background(RgbStatusBg)
	for col := 0; col < width; col++ {
		r.screen.SetContent(col, row, ' ', nil, bg)
	}

	modeColor := RgbModePhysics
	if s.Strategy == "circuit" {
		modeColor = RgbModeCircuit
	}
	x := r.drawText(0, row, " "+strings.ToUpper(s.Strategy)+" ", bg.Foreground(tcell.ColorBlack).Background(modeColor))

	state, stateColor := "paused", RgbPaused
	if s.Running {
		state, stateColor = "running", RgbRunning
	}
	x = r.drawText(x+1, row, state, bg.Foreground(stateColor))

	var b strings.Builder
	if r.level != "" {
		fmt.Fprintf(&b, " | %s", r.level)
	}
	fmt.Fprintf(&b, " | frame %d | entities %d", s.Frame, len(s.Entities))
	if r.status != nil {
		if summary := r.status.Summary(summaryKeys(s.Strategy)...); summary != "" {
			b.WriteString(" | ")
			b.WriteString(summary)
		}
	}
	if r.message != "" {
		b.WriteString(" | ")
		b.WriteString(r.message)
	}
	r.drawText(x, row, truncate(b.String(), width-x), bg.Foreground(RgbStatusBar))
}

func summaryKeys(strategy string) []string {
	if strategy == "circuit" {
		return []string{status.KeyTotalVoltage, status.KeyResistance, status.KeyCurrent}
	}
	return []string{status.KeyCollisions, status.KeyBounces}
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// ElementLabel formats a circuit element's declared value and solved state
func ElementLabel(c *component.CircuitComponent) string {
	switch c.Type {
	case component.CircuitBattery:
		return fmt.Sprintf("%gV %.3fA", c.Value, c.Current)
	case component.CircuitResistor:
		return fmt.Sprintf("%gΩ %.3fA %.2fV", c.Value, c.Current, c.Voltage)
	default:
		return fmt.Sprintf("%g", c.Value)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
