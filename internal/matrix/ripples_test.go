package matrix

import (
	"testing"

	"matrix-bg/internal/core"
)

func TestSpawnGroupShape(t *testing.T) {
	m := NewRipples(core.NewRNG(1), 5)
	m.SpawnGroupAt(100, 120)
	all := m.All()
	if len(all) != GroupSize {
		t.Fatalf("group size = %d, want %d", len(all), GroupSize)
	}
	wantDelay := []int{0, 10, 20}
	for i, r := range all {
		if r.Delay != wantDelay[i] {
			t.Fatalf("ripple %d delay = %d, want %d", i, r.Delay, wantDelay[i])
		}
		if r.X != 100 || r.Y != 120 || r.Radius != 0 {
			t.Fatalf("ripple %d at (%v,%v) radius %v", i, r.X, r.Y, r.Radius)
		}
		if r.Secondary != (i > 0) {
			t.Fatalf("ripple %d secondary = %v", i, r.Secondary)
		}
	}
	if all[0].MaxRadius <= all[1].MaxRadius || all[0].Speed <= all[1].Speed {
		t.Fatal("primary must outgrow and outpace its echoes")
	}
}

func TestSpawnEvictsOldestFirst(t *testing.T) {
	m := NewRipples(core.NewRNG(1), 5)
	if m.Cap() != 15 {
		t.Fatalf("cap = %d, want 15", m.Cap())
	}
	for i := 0; i < 20; i++ {
		m.SpawnGroupAt(float64(i), 0)
		if m.Len() > m.Cap() {
			t.Fatalf("after spawn %d holding %d ripples", i, m.Len())
		}
	}
	all := m.All()
	if len(all) != 15 {
		t.Fatalf("len = %d, want 15", len(all))
	}
	for i, r := range all {
		if want := float64(15 + i/GroupSize); r.X != want {
			t.Fatalf("ripple %d from group %v, want %v", i, r.X, want)
		}
	}
}

func TestNewRipplesDefaultsCap(t *testing.T) {
	if got := NewRipples(core.NewRNG(1), 0).Cap(); got != 15 {
		t.Fatalf("cap = %d, want 15", got)
	}
	if got := NewRipples(core.NewRNG(1), 2).Cap(); got != 6 {
		t.Fatalf("cap = %d, want 6", got)
	}
}

func TestTickDropsExpiredAndKeepsOrder(t *testing.T) {
	m := NewRipples(core.NewRNG(1), 5)
	m.SpawnGroupAt(1, 0)
	for i := 0; i < 50; i++ {
		m.Tick()
	}
	m.SpawnGroupAt(2, 0)
	for i := 0; i < 50; i++ {
		m.Tick()
	}
	// Group 1: primary expired at tick 100, echoes still growing.
	all := m.All()
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
	wantX := []float64{1, 1, 2, 2, 2}
	for i, r := range all {
		if r.X != wantX[i] {
			t.Fatalf("ripple %d from group %v, want %v", i, r.X, wantX[i])
		}
		if i >= 2 && r.Delay != 0 {
			t.Fatalf("ripple %d still delayed", i)
		}
	}
	for i := 0; i < 200; i++ {
		m.Tick()
	}
	if m.Len() != 0 {
		t.Fatalf("len = %d after all ripples expired", m.Len())
	}
}

func TestStrongestPrefersFirstOnTie(t *testing.T) {
	a := &Ripple{MaxRadius: 300, Band: 40, Opacity: 1, Color: Palette[0]}
	b := &Ripple{MaxRadius: 300, Band: 40, Opacity: 1, Color: Palette[3]}
	inf, c, ok := strongest([]*Ripple{a, b}, 0, 0)
	if !ok || inf != 1 || c != Palette[0] {
		t.Fatalf("tie resolved to %+v (%v), want first ripple", c, inf)
	}
	a.Opacity = 0.5
	_, c, _ = strongest([]*Ripple{a, b}, 0, 0)
	if c != Palette[3] {
		t.Fatalf("stronger later ripple should win, got %+v", c)
	}
	if _, _, ok := strongest(nil, 0, 0); ok {
		t.Fatal("empty set has no influence")
	}
}

func TestRipplesReset(t *testing.T) {
	m := NewRipples(core.NewRNG(1), 5)
	m.SpawnGroupAt(0, 0)
	m.Reset()
	if m.Len() != 0 {
		t.Fatalf("len = %d after reset", m.Len())
	}
}

// Spawn at (100,100) and observe the group over time.
func TestRippleGroupScenario(t *testing.T) {
	m := NewRipples(core.NewRNG(9), 5)
	m.SpawnGroupAt(100, 100)
	all := m.All()
	primary, echo1, echo2 := all[0], all[1], all[2]

	if inf, _, ok := primary.InfluenceAt(100, 100); !ok || inf != 1 {
		t.Fatalf("primary influence at origin = %v", inf)
	}
	for _, echo := range []*Ripple{echo1, echo2} {
		if _, _, ok := echo.InfluenceAt(100, 100); ok {
			t.Fatal("echoes must be silent before their delay")
		}
	}
	if inf, c, _ := m.Strongest(100, 100); inf != 1 || c != primary.Color {
		t.Fatalf("strongest at origin = %v %+v", inf, c)
	}

	for i := 0; i < 67; i++ {
		m.Tick()
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
	if primary.Radius != 201 {
		t.Fatalf("primary radius = %v, want 201", primary.Radius)
	}
	if echo1.Radius != 114 {
		t.Fatalf("first echo radius = %v, want 114", echo1.Radius)
	}
	if echo2.Radius != 94 {
		t.Fatalf("second echo radius = %v, want 94", echo2.Radius)
	}
	if _, _, ok := primary.InfluenceAt(100, 100); ok {
		t.Fatal("primary ring has left the origin")
	}
	if _, _, ok := echo1.InfluenceAt(100, 100); ok {
		t.Fatal("first echo ring has left the origin")
	}
	inf, _, ok := echo1.InfluenceAt(214, 100)
	if !ok || !near(inf, 1-114.0/200) {
		t.Fatalf("first echo on its ring = %v, want %v", inf, 1-114.0/200)
	}
	if _, _, ok := echo1.InfluenceAt(100+114+30, 100); ok {
		t.Fatal("first echo band is 30px wide")
	}
}
