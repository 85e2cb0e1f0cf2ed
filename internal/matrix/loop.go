package matrix

import (
	"errors"
	"log"

	"matrix-bg/internal/core"
)

var (
	// ErrNoSurface is returned by New when there is nothing to paint on.
	ErrNoSurface = errors.New("matrix: no render surface")
	// ErrNoGeometry is returned by New when the container cannot be measured.
	ErrNoGeometry = errors.New("matrix: no container geometry")
)

// Surface is a 2D target that can paint single glyphs.
type Surface interface {
	Clear()
	// SetFont selects the glyph size in pixels. Glyphs are drawn centred on
	// the coordinates passed to FillGlyph.
	SetFont(sizePx int)
	FillGlyph(ch rune, x, y float64, c RGBA)
}

// Geometry reports the container rectangle in client coordinates.
type Geometry interface {
	Bounds() core.Rect
}

// StaticGeometry is a Geometry that never changes.
type StaticGeometry core.Rect

// Bounds returns the fixed rectangle.
func (g StaticGeometry) Bounds() core.Rect { return core.Rect(g) }

// Stats summarises the loop state for overlays and tools.
type Stats struct {
	Frames      uint64
	Ripples     int
	Cols, Rows  int
	CellSize    float64
	GlowAlpha   float64
	HoverRadius float64
}

// Loop owns one matrix background: its grid, hover glow and ripples. All
// methods must be called from the same goroutine. Methods on a nil *Loop are
// no-ops.
type Loop struct {
	cfg     Config
	rng     *core.RNG
	surface Surface
	geom    Geometry
	logger  *log.Logger

	grid    *Grid
	hover   HoverState
	ripples *Ripples

	sched   core.Scheduler
	pending core.FrameID
	running bool
	frames  uint64
}

// New builds a loop painting on surface and sized from geom. A nil surface
// or geometry returns an error; callers treat that as an inactive
// background rather than a failure.
func New(cfg Config, surface Surface, geom Geometry) (*Loop, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if geom == nil {
		return nil, ErrNoGeometry
	}
	cfg = cfg.normalized()
	rng := core.NewRNG(cfg.Seed)
	l := &Loop{
		cfg:     cfg,
		rng:     rng,
		surface: surface,
		geom:    geom,
		ripples: NewRipples(rng, cfg.MaxGroups),
	}
	l.hover = NewHoverState(0)
	l.Resize()
	return l, nil
}

// SetLogger routes grid rebuild notices to logger. nil silences them.
func (l *Loop) SetLogger(logger *log.Logger) {
	if l == nil {
		return
	}
	l.logger = logger
}

func (l *Loop) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}

// Config returns the effective configuration.
func (l *Loop) Config() Config {
	if l == nil {
		return DefaultConfig()
	}
	return l.cfg
}

// Grid returns the current grid. It is replaced on every Resize.
func (l *Loop) Grid() *Grid {
	if l == nil {
		return nil
	}
	return l.grid
}

// Hover returns a copy of the hover state.
func (l *Loop) Hover() HoverState {
	if l == nil {
		return HoverState{}
	}
	return l.hover
}

// Ripples exposes the active ripple set.
func (l *Loop) Ripples() *Ripples {
	if l == nil {
		return nil
	}
	return l.ripples
}

// Bounds returns the current container rectangle.
func (l *Loop) Bounds() core.Rect {
	if l == nil {
		return core.Rect{}
	}
	return l.geom.Bounds()
}

// Resize rebuilds the grid from the container geometry. The previous grid
// is discarded, not resized.
func (l *Loop) Resize() {
	if l == nil {
		return
	}
	b := l.geom.Bounds()
	l.grid = NewGrid(b.W, b.H, l.rng)
	l.hover.SetRadiusBase(l.grid.HoverRadiusBase())
	l.logf("matrix: grid %dx%d cells of %.0fpx for %.0fx%.0f container", l.grid.Cols, l.grid.Rows, l.grid.CellSize, b.W, b.H)
}

// Reset reseeds the loop and drops all ripples and hover glow.
func (l *Loop) Reset(seed int64) {
	if l == nil {
		return
	}
	l.cfg.Seed = seed
	l.rng = core.NewRNG(seed)
	l.ripples = NewRipples(l.rng, l.cfg.MaxGroups)
	l.hover = NewHoverState(0)
	l.frames = 0
	l.Resize()
}

// Frame runs one iteration: flicker, paint every cell, advance ripples and
// decay the hover glow.
func (l *Loop) Frame() {
	if l == nil {
		return
	}
	g := l.grid
	l.surface.Clear()
	g.Flicker(l.rng, l.cfg.FlickerRate)
	l.surface.SetFont(g.FontSize())
	cells := g.Cells()
	active := l.ripples.All()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := cells[g.Index(col, row)]
			x, y := g.Center(col, row)
			l.surface.FillGlyph(cell.Glyph, x, y, ColorFor(cell, x, y, l.hover, active))
		}
	}
	l.ripples.Tick()
	l.hover.Decay()
	l.frames++
}

// Start schedules Frame on every repaint of s until Stop is called. Starting
// a running loop does nothing.
func (l *Loop) Start(s core.Scheduler) {
	if l == nil || l.running || s == nil {
		return
	}
	l.sched = s
	l.running = true
	l.pending = s.RequestFrame(l.onFrame)
}

func (l *Loop) onFrame() {
	if !l.running {
		return
	}
	l.Frame()
	if l.running {
		l.pending = l.sched.RequestFrame(l.onFrame)
	}
}

// Stop cancels the pending frame and releases the scheduler.
func (l *Loop) Stop() {
	if l == nil || !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.pending)
	l.sched = nil
}

// Running reports whether the loop is scheduled.
func (l *Loop) Running() bool {
	return l != nil && l.running
}

// Stats returns a summary of the current state.
func (l *Loop) Stats() Stats {
	if l == nil {
		return Stats{}
	}
	return Stats{
		Frames:      l.frames,
		Ripples:     l.ripples.Len(),
		Cols:        l.grid.Cols,
		Rows:        l.grid.Rows,
		CellSize:    l.grid.CellSize,
		GlowAlpha:   l.hover.GlowAlpha,
		HoverRadius: l.hover.Radius,
	}
}
