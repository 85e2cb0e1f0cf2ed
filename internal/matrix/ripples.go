package matrix

import "matrix-bg/internal/core"

// GroupSize is the number of ripples created per gesture: one primary and
// two echoes.
const GroupSize = 3

// echoDelays are the start delays, in frames, of the secondary ripples.
var echoDelays = [...]int{10, 20}

// Ripples owns the active ripple set. Iteration order is insertion order;
// newer groups sit at the end and are evicted last.
type Ripples struct {
	rng       *core.RNG
	maxGroups int
	active    []*Ripple
}

// NewRipples returns an empty set capped at maxGroups groups.
func NewRipples(rng *core.RNG, maxGroups int) *Ripples {
	if maxGroups <= 0 {
		maxGroups = DefaultConfig().MaxGroups
	}
	return &Ripples{rng: rng, maxGroups: maxGroups}
}

// Cap returns the maximum number of ripples kept after a spawn.
func (m *Ripples) Cap() int { return m.maxGroups * GroupSize }

// SpawnGroupAt adds a primary ripple and its echoes at (x, y), then evicts
// the oldest ripples until the set fits its cap.
func (m *Ripples) SpawnGroupAt(x, y float64) {
	m.active = append(m.active, NewPrimaryRipple(x, y, m.rng))
	for _, d := range echoDelays {
		m.active = append(m.active, NewSecondaryRipple(x, y, d, m.rng))
	}
	if over := len(m.active) - m.Cap(); over > 0 {
		n := copy(m.active, m.active[over:])
		clear(m.active[n:])
		m.active = m.active[:n]
	}
}

// Tick advances every ripple and drops the ones that have expired.
func (m *Ripples) Tick() {
	kept := m.active[:0]
	for _, r := range m.active {
		if r.Advance() {
			kept = append(kept, r)
		}
	}
	clear(m.active[len(kept):])
	m.active = kept
}

// Strongest returns the largest ripple influence at (x, y). On exact ties the
// earliest ripple in insertion order wins.
func (m *Ripples) Strongest(x, y float64) (float64, RGB, bool) {
	return strongest(m.active, x, y)
}

func strongest(ripples []*Ripple, x, y float64) (float64, RGB, bool) {
	best := 0.0
	var color RGB
	found := false
	for _, r := range ripples {
		inf, c, ok := r.InfluenceAt(x, y)
		if ok && inf > best {
			best, color, found = inf, c, true
		}
	}
	return best, color, found
}

// All returns the active ripples in insertion order. Callers must not modify
// the slice.
func (m *Ripples) All() []*Ripple { return m.active }

// Len returns the number of active ripples.
func (m *Ripples) Len() int { return len(m.active) }

// Reset drops every ripple.
func (m *Ripples) Reset() {
	clear(m.active)
	m.active = m.active[:0]
}
