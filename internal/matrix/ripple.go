package matrix

import (
	"math"

	"matrix-bg/internal/core"
)

// RGB is an opaque accent colour.
type RGB struct {
	R, G, B uint8
}

// Palette holds the colours a ripple may be given: blue, orange, yellow and
// neon pink.
var Palette = [...]RGB{
	{R: 0, G: 119, B: 255},
	{R: 255, G: 122, B: 0},
	{R: 255, G: 193, B: 7},
	{R: 255, G: 20, B: 147},
}

const (
	primaryMaxRadius = 300
	primarySpeed     = 3
	primaryBand      = 40

	secondaryMaxRadius = 200
	secondarySpeed     = 2
	secondaryBand      = 30

	maxLineWidth = 3
)

// Ripple is an expanding coloured ring. While Delay is positive the ripple
// neither grows nor influences any cell.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Secondary bool
	Delay     int
	Opacity   float64
	LineWidth float64
	Band      float64
	Color     RGB
}

// NewPrimaryRipple creates the leading ripple of a group.
func NewPrimaryRipple(x, y float64, rng *core.RNG) *Ripple {
	return newRipple(x, y, false, 0, rng)
}

// NewSecondaryRipple creates a smaller echo that starts after delay frames.
func NewSecondaryRipple(x, y float64, delay int, rng *core.RNG) *Ripple {
	return newRipple(x, y, true, delay, rng)
}

func newRipple(x, y float64, secondary bool, delay int, rng *core.RNG) *Ripple {
	if delay < 0 {
		delay = 0
	}
	r := &Ripple{
		X:         x,
		Y:         y,
		Secondary: secondary,
		Delay:     delay,
		Opacity:   1,
		LineWidth: maxLineWidth,
		Color:     Palette[rng.IntN(len(Palette))],
	}
	if secondary {
		r.MaxRadius, r.Speed, r.Band = secondaryMaxRadius, secondarySpeed, secondaryBand
	} else {
		r.MaxRadius, r.Speed, r.Band = primaryMaxRadius, primarySpeed, primaryBand
	}
	return r
}

// Active reports whether the start delay has elapsed.
func (r *Ripple) Active() bool { return r.Delay <= 0 }

// Advance moves the ripple forward one frame and reports whether it is still
// alive.
func (r *Ripple) Advance() bool {
	if r.Delay > 0 {
		r.Delay--
		return true
	}
	r.Radius += r.Speed
	r.Opacity = 1 - r.Radius/r.MaxRadius
	r.LineWidth = maxLineWidth * r.Opacity
	return r.Radius < r.MaxRadius
}

// InfluenceAt returns how strongly the ring colours the point (x, y). ok is
// false when the point is outside the band or the ripple is still delayed.
func (r *Ripple) InfluenceAt(x, y float64) (influence float64, c RGB, ok bool) {
	if r.Delay > 0 {
		return 0, RGB{}, false
	}
	dist := math.Hypot(x-r.X, y-r.Y)
	fromBand := math.Abs(dist - r.Radius)
	if fromBand >= r.Band {
		return 0, RGB{}, false
	}
	return (1 - fromBand/r.Band) * r.Opacity, r.Color, true
}
