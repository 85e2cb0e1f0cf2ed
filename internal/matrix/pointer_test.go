package matrix

import (
	"testing"
	"time"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newPointerFixture(t *testing.T) (*Loop, *Pointer, *manualClock) {
	t.Helper()
	l, err := New(DefaultConfig(), &recordSurface{}, StaticGeometry{X: 10, Y: 20, W: 400, H: 300})
	if err != nil {
		t.Fatal(err)
	}
	clk := &manualClock{now: time.Unix(1000, 0)}
	return l, NewPointer(l, clk), clk
}

func TestPointerMoveUpdatesHover(t *testing.T) {
	l, p, _ := newPointerFixture(t)
	p.Move(110, 70)
	h := l.Hover()
	if h.X != 100 || h.Y != 50 {
		t.Fatalf("hover at (%v,%v), want container-relative (100,50)", h.X, h.Y)
	}
	if h.GlowAlpha != 1 || !near(h.Radius, h.RadiusBase*1.2) {
		t.Fatalf("hover %+v not refreshed", h)
	}
	if l.Ripples().Len() != 0 {
		t.Fatal("moving without a press must not spawn")
	}
}

func TestPointerDownSpawnsInside(t *testing.T) {
	l, p, _ := newPointerFixture(t)
	p.Down(5, 25)
	if p.Dragging() || l.Ripples().Len() != 0 {
		t.Fatal("press outside the container must be ignored")
	}
	p.Down(410, 320)
	if !p.Dragging() || l.Ripples().Len() != 3 {
		t.Fatal("press on the container edge spawns a group")
	}
	r := l.Ripples().All()[0]
	if r.X != 400 || r.Y != 300 {
		t.Fatalf("ripple at (%v,%v), want (400,300)", r.X, r.Y)
	}
}

func TestPointerDragThrottle(t *testing.T) {
	l, p, clk := newPointerFixture(t)
	p.Down(60, 70)
	clk.advance(50 * time.Millisecond)
	p.Move(80, 70)
	if l.Ripples().Len() != 3 {
		t.Fatalf("spawned within throttle window: %d ripples", l.Ripples().Len())
	}
	clk.advance(50 * time.Millisecond)
	p.Move(90, 70)
	if l.Ripples().Len() != 6 {
		t.Fatalf("expected spawn after 100ms, have %d ripples", l.Ripples().Len())
	}
	clk.advance(99 * time.Millisecond)
	p.Move(95, 70)
	if l.Ripples().Len() != 6 {
		t.Fatal("throttle restarts after each spawn")
	}
	clk.advance(time.Millisecond)
	p.Move(-50, 70)
	if l.Ripples().Len() != 6 {
		t.Fatal("drag outside the container must not spawn")
	}
	p.Move(100, 70)
	if l.Ripples().Len() != 9 {
		t.Fatal("throttle is not consumed by suppressed out-of-bounds moves")
	}
}

func TestPointerReleaseParksPointer(t *testing.T) {
	for name, release := range map[string]func(*Pointer){
		"up":    (*Pointer).Up,
		"leave": (*Pointer).Leave,
	} {
		l, p, clk := newPointerFixture(t)
		p.Down(60, 70)
		release(p)
		if p.Dragging() {
			t.Fatalf("%s: still dragging", name)
		}
		if h := l.Hover(); h.X != FarAway || h.Y != FarAway {
			t.Fatalf("%s: pointer at (%v,%v)", name, h.X, h.Y)
		}
		clk.advance(time.Second)
		p.Move(100, 100)
		if l.Ripples().Len() != 3 {
			t.Fatalf("%s: move after release spawned", name)
		}
	}
}

func TestPointerCustomInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DragInterval = 0
	l, err := New(cfg, &recordSurface{}, StaticGeometry{W: 400, H: 300})
	if err != nil {
		t.Fatal(err)
	}
	p := NewPointer(l, &manualClock{now: time.Unix(0, 0)})
	p.Down(10, 10)
	p.Move(20, 20)
	p.Move(30, 30)
	if l.Ripples().Len() != 9 {
		t.Fatalf("zero interval should spawn on every move, have %d", l.Ripples().Len())
	}
}
