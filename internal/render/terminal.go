package render

import (
	"matrix-bg/internal/core"
	"matrix-bg/internal/matrix"

	"github.com/gdamore/tcell/v2"
)

// DefaultTerminalCellPx is the pixel size assigned to one terminal cell. It
// matches the widest grid breakpoint so each grid cell lands on one terminal
// cell once the terminal is at least 32 columns wide.
const DefaultTerminalCellPx = 24

// Terminal paints matrix glyphs onto a tcell screen. Terminals have no
// alpha, so colours are flattened over Backdrop.
type Terminal struct {
	screen tcell.Screen
	cellPx float64
	bg     tcell.Color
	styles map[matrix.RGBA]tcell.Style
}

// NewTerminal wraps screen. cellPx is the pixel width and height of one
// terminal cell; non-positive values use DefaultTerminalCellPx.
func NewTerminal(screen tcell.Screen, cellPx float64) *Terminal {
	if cellPx <= 0 {
		cellPx = DefaultTerminalCellPx
	}
	return &Terminal{
		screen: screen,
		cellPx: cellPx,
		bg:     tcell.NewRGBColor(int32(Backdrop.R), int32(Backdrop.G), int32(Backdrop.B)),
		styles: make(map[matrix.RGBA]tcell.Style),
	}
}

// Bounds reports the screen as a container of cellPx-sized cells.
func (t *Terminal) Bounds() core.Rect {
	w, h := t.screen.Size()
	return core.Rect{W: float64(w) * t.cellPx, H: float64(h) * t.cellPx}
}

// ClientPoint converts a terminal cell position into client pixels at the
// cell centre.
func (t *Terminal) ClientPoint(col, row int) (float64, float64) {
	half := t.cellPx / 2
	return float64(col)*t.cellPx + half, float64(row)*t.cellPx + half
}

// Clear blanks the screen with the backdrop colour.
func (t *Terminal) Clear() {
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
	if len(t.styles) > 4096 {
		clear(t.styles)
	}
}

// SetFont is a no-op; the terminal font is fixed.
func (t *Terminal) SetFont(int) {}

// FillGlyph draws ch in the terminal cell containing (x, y). Points outside
// the screen are dropped.
func (t *Terminal) FillGlyph(ch rune, x, y float64, c matrix.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	col, row := int(x/t.cellPx), int(y/t.cellPx)
	w, h := t.screen.Size()
	if col >= w || row >= h {
		return
	}
	t.screen.SetContent(col, row, ch, nil, t.style(c))
}

func (t *Terminal) style(c matrix.RGBA) tcell.Style {
	if st, ok := t.styles[c]; ok {
		return st
	}
	r, g, b := OverBackground(c, Backdrop)
	st := tcell.StyleDefault.
		Background(t.bg).
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	t.styles[c] = st
	return st
}
