package matrix

import (
	"math"

	"matrix-bg/internal/core"
)

const (
	glyphPrimary   = 'C'
	glyphSecondary = 'B'

	initialShadeMin = 190
	initialShadeMax = 235
	flickerShadeMin = 140
	flickerShadeMax = 220

	glyphSwapChance    = 0.02
	glyphPrimaryChance = 0.66

	hoverRadiusScale = 5.4
	fontScale        = 0.8
)

// glyphPool weights the initial draw two to one in favour of glyphPrimary.
var glyphPool = [...]rune{glyphPrimary, glyphPrimary, glyphSecondary}

// Cell is one grid position.
type Cell struct {
	Glyph rune
	Shade uint8
}

// Grid stores the cells of one container configuration in row-major order.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	cells      []Cell
}

// CellSizeFor picks the cell size in pixels for a container width.
func CellSizeFor(width float64) float64 {
	switch {
	case width < 480:
		return 18
	case width < 768:
		return 20
	default:
		return 24
	}
}

// NewGrid builds a grid covering a width×height container. Non-positive
// dimensions produce an empty grid.
func NewGrid(width, height float64, rng *core.RNG) *Grid {
	size := CellSizeFor(width)
	g := &Grid{CellSize: size}
	if width <= 0 || height <= 0 {
		return g
	}
	g.Cols = int(math.Ceil(width / size))
	g.Rows = int(math.Ceil(height / size))
	g.cells = make([]Cell, g.Cols*g.Rows)
	for i := range g.cells {
		g.cells[i] = Cell{
			Glyph: glyphPool[rng.IntN(len(glyphPool))],
			Shade: uint8(rng.Between(initialShadeMin, initialShadeMax)),
		}
	}
	return g
}

// Cells exposes the backing slice so callers can read cells directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for (col, row).
func (g *Grid) Index(col, row int) int { return row*g.Cols + col }

// Center returns the pixel centre of the cell at (col, row).
func (g *Grid) Center(col, row int) (float64, float64) {
	half := g.CellSize / 2
	return float64(col)*g.CellSize + half, float64(row)*g.CellSize + half
}

// HoverRadiusBase returns the resting hover radius for this cell size.
func (g *Grid) HoverRadiusBase() float64 { return g.CellSize * hoverRadiusScale }

// FontSize returns the glyph size in pixels.
func (g *Grid) FontSize() int { return int(math.Floor(g.CellSize * fontScale)) }

// Flicker re-shades floor(len*rate) randomly chosen cells. Indices are drawn
// with replacement, so the same cell may be hit twice in one call.
func (g *Grid) Flicker(rng *core.RNG, rate float64) {
	n := int(math.Floor(float64(len(g.cells)) * rate))
	for i := 0; i < n; i++ {
		c := &g.cells[rng.IntN(len(g.cells))]
		c.Shade = uint8(rng.Between(flickerShadeMin, flickerShadeMax))
		if rng.Chance(glyphSwapChance) {
			if rng.Chance(glyphPrimaryChance) {
				c.Glyph = glyphPrimary
			} else {
				c.Glyph = glyphSecondary
			}
		}
	}
}
