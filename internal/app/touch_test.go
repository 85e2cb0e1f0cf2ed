package app

import (
	"image"
	"testing"
	"time"

	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func newTouchLoop(t *testing.T) (*matrix.Loop, *stepClock, *touchGesture) {
	t.Helper()
	loop, err := matrix.New(matrix.DefaultConfig(), render.NewRecorder(), matrix.StaticGeometry{W: 1000, H: 500})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clk := &stepClock{now: time.Unix(0, 0)}
	return loop, clk, &touchGesture{pointer: matrix.NewPointer(loop, clk)}
}

func TestHeldTouchDoesNotDrag(t *testing.T) {
	loop, clk, touch := newTouchLoop(t)
	touch.begin(image.Pt(500, 250))
	pos := image.Pt(510, 250)
	touch.move(pos)
	if glow := loop.Hover().GlowAlpha; glow != 1 {
		t.Fatalf("glow after first move = %v, want 1", glow)
	}
	for i := 0; i < 60; i++ {
		clk.now = clk.now.Add(time.Second / 60)
		touch.move(pos)
		loop.Frame()
	}
	if got := loop.Ripples().Len(); got != 3 {
		t.Fatalf("held touch spawned %d ripples, want the single press group of 3", got)
	}
	if glow := loop.Hover().GlowAlpha; glow > 0.5 {
		t.Fatalf("glow did not fade while the touch was held: %v", glow)
	}
}

func TestMovingTouchDragsAndEnds(t *testing.T) {
	loop, clk, touch := newTouchLoop(t)
	touch.begin(image.Pt(500, 250))
	clk.now = clk.now.Add(150 * time.Millisecond)
	touch.move(image.Pt(520, 250))
	if got := loop.Ripples().Len(); got != 6 {
		t.Fatalf("moving touch ripples = %d, want 6", got)
	}
	touch.end()
	clk.now = clk.now.Add(150 * time.Millisecond)
	touch.move(image.Pt(540, 250))
	if got := loop.Ripples().Len(); got != 6 {
		t.Fatalf("move after release spawned ripples: %d", got)
	}
}
