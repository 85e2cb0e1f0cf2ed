package matrix

import (
	"time"

	"matrix-bg/internal/core"
)

// Pointer turns pointer and touch events in client coordinates into hover
// updates and ripple spawns on a Loop. Touch hosts map start, move and end to
// Down, Move and Up.
type Pointer struct {
	loop      *Loop
	clock     core.Clock
	dragging  bool
	lastSpawn time.Time
}

// NewPointer attaches a pointer adapter to l. A nil clock reads the wall
// clock.
func NewPointer(l *Loop, clock core.Clock) *Pointer {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Pointer{loop: l, clock: clock}
}

// Dragging reports whether a press is in progress.
func (p *Pointer) Dragging() bool { return p.dragging }

// local converts client coordinates to container space and reports whether
// the point lies inside the container.
func (p *Pointer) local(clientX, clientY float64) (core.Point, bool) {
	b := p.loop.geom.Bounds()
	pt := b.Local(clientX, clientY)
	inside := core.Rect{W: b.W, H: b.H}.Contains(pt)
	return pt, inside
}

// Move updates the hover glow and, while dragging, spawns a ripple group at
// most once per drag interval.
func (p *Pointer) Move(clientX, clientY float64) {
	if p.loop == nil {
		return
	}
	pt, inside := p.local(clientX, clientY)
	p.loop.hover.Move(pt.X, pt.Y)
	if !p.dragging || !inside {
		return
	}
	now := p.clock.Now()
	if now.Sub(p.lastSpawn) < p.loop.cfg.DragInterval {
		return
	}
	p.loop.ripples.SpawnGroupAt(pt.X, pt.Y)
	p.lastSpawn = now
}

// Down starts a drag and spawns a ripple group when the press lands inside
// the container. Presses outside are ignored.
func (p *Pointer) Down(clientX, clientY float64) {
	if p.loop == nil {
		return
	}
	pt, inside := p.local(clientX, clientY)
	if !inside {
		return
	}
	p.dragging = true
	p.lastSpawn = p.clock.Now()
	p.loop.ripples.SpawnGroupAt(pt.X, pt.Y)
}

// Up ends the drag and parks the pointer.
func (p *Pointer) Up() {
	p.release()
}

// Leave ends the drag and parks the pointer.
func (p *Pointer) Leave() {
	p.release()
}

func (p *Pointer) release() {
	p.dragging = false
	if p.loop != nil {
		p.loop.hover.Leave()
	}
}
