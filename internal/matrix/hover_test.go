package matrix

import "testing"

func TestHoverStateLifecycle(t *testing.T) {
	h := NewHoverState(100)
	if h.X != FarAway || h.Y != FarAway || h.GlowAlpha != 0 || h.Radius != 100 {
		t.Fatalf("initial hover %+v", h)
	}
	h.Move(10, 20)
	if h.X != 10 || h.Y != 20 || h.GlowAlpha != 1 || !near(h.Radius, 120) {
		t.Fatalf("after move %+v", h)
	}
	h.Decay()
	if !near(h.Radius, 120+(100-120)*0.08) || !near(h.GlowAlpha, 0.96) {
		t.Fatalf("after decay %+v", h)
	}
	for i := 0; i < 500; i++ {
		h.Decay()
	}
	if h.Radius-100 > 1e-6 || h.GlowAlpha > 1e-6 {
		t.Fatalf("hover should settle at base with no glow, got %+v", h)
	}
	h.Leave()
	if h.X != FarAway || h.Y != FarAway {
		t.Fatalf("after leave %+v", h)
	}
	h.SetRadiusBase(50)
	if h.Radius != 50 || h.RadiusBase != 50 {
		t.Fatalf("after SetRadiusBase %+v", h)
	}
}
