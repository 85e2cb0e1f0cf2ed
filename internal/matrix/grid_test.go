package matrix

import (
	"slices"
	"testing"

	"matrix-bg/internal/core"
)

func TestCellSizeBreakpoints(t *testing.T) {
	cases := map[float64]float64{
		0:    18,
		400:  18,
		479:  18,
		480:  20,
		600:  20,
		767:  20,
		768:  24,
		1000: 24,
	}
	for width, want := range cases {
		if got := CellSizeFor(width); got != want {
			t.Fatalf("CellSizeFor(%v) = %v, want %v", width, got, want)
		}
	}
}

func TestNewGridDimensions(t *testing.T) {
	cases := []struct {
		w, h       float64
		size       float64
		cols, rows int
	}{
		{400, 300, 18, 23, 17},
		{600, 400, 20, 30, 20},
		{1000, 500, 24, 42, 21},
		{1, 1, 18, 1, 1},
	}
	for _, c := range cases {
		g := NewGrid(c.w, c.h, core.NewRNG(1))
		if g.CellSize != c.size || g.Cols != c.cols || g.Rows != c.rows {
			t.Fatalf("NewGrid(%v,%v) = size %v %dx%d, want size %v %dx%d", c.w, c.h, g.CellSize, g.Cols, g.Rows, c.size, c.cols, c.rows)
		}
		if g.Len() != g.Cols*g.Rows {
			t.Fatalf("len(cells) = %d, want %d", g.Len(), g.Cols*g.Rows)
		}
	}
}

func TestNewGridEmptyContainer(t *testing.T) {
	for _, dims := range [][2]float64{{0, 300}, {300, 0}, {-10, 50}} {
		g := NewGrid(dims[0], dims[1], core.NewRNG(1))
		if g.Cols != 0 || g.Rows != 0 || g.Len() != 0 {
			t.Fatalf("NewGrid(%v) = %dx%d with %d cells, want empty", dims, g.Cols, g.Rows, g.Len())
		}
	}
}

func TestNewGridInitialCells(t *testing.T) {
	g := NewGrid(1000, 800, core.NewRNG(3))
	primary := 0
	for i, c := range g.Cells() {
		if c.Glyph != glyphPrimary && c.Glyph != glyphSecondary {
			t.Fatalf("cell %d glyph %q not in pool", i, c.Glyph)
		}
		if c.Shade < initialShadeMin || c.Shade >= initialShadeMax {
			t.Fatalf("cell %d shade %d outside [190,235)", i, c.Shade)
		}
		if c.Glyph == glyphPrimary {
			primary++
		}
	}
	ratio := float64(primary) / float64(g.Len())
	if ratio < 0.6 || ratio > 0.73 {
		t.Fatalf("primary glyph ratio %.3f, want about 2/3", ratio)
	}
}

func TestNewGridDeterministic(t *testing.T) {
	a := NewGrid(500, 300, core.NewRNG(11))
	b := NewGrid(500, 300, core.NewRNG(11))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must build the same grid")
	}
}

func TestGridGeometryHelpers(t *testing.T) {
	g := NewGrid(1000, 500, core.NewRNG(1))
	x, y := g.Center(2, 3)
	if x != 60 || y != 84 {
		t.Fatalf("Center(2,3) = (%v,%v), want (60,84)", x, y)
	}
	if g.Index(2, 3) != 3*g.Cols+2 {
		t.Fatalf("Index(2,3) = %d", g.Index(2, 3))
	}
	if got := g.HoverRadiusBase(); got < 129.59 || got > 129.61 {
		t.Fatalf("HoverRadiusBase = %v, want 129.6", got)
	}
	if got := g.FontSize(); got != 19 {
		t.Fatalf("FontSize = %d, want 19", got)
	}
}

func TestFlickerTouchesBoundedSubset(t *testing.T) {
	rng := core.NewRNG(5)
	g := NewGrid(1000, 500, rng)
	budget := g.Len() / 100
	for frame := 0; frame < 20; frame++ {
		before := slices.Clone(g.Cells())
		g.Flicker(rng, 0.01)
		changed := 0
		for i, c := range g.Cells() {
			if c == before[i] {
				continue
			}
			changed++
			if c.Shade != before[i].Shade && (c.Shade < flickerShadeMin || c.Shade >= flickerShadeMax) {
				t.Fatalf("flickered shade %d outside [140,220)", c.Shade)
			}
		}
		if changed > budget {
			t.Fatalf("frame %d changed %d cells, budget %d", frame, changed, budget)
		}
	}
}

func TestFlickerSmallGridIsStatic(t *testing.T) {
	rng := core.NewRNG(5)
	g := NewGrid(100, 100, rng)
	before := slices.Clone(g.Cells())
	g.Flicker(rng, 0.01)
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("grids under 100 cells have no flicker budget")
	}
	empty := NewGrid(0, 0, rng)
	empty.Flicker(rng, 0.01)
}
