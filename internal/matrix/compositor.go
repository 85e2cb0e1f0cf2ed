package matrix

import (
	"image/color"
	"math"
)

const (
	baseAlpha   = 0.35
	accentAlpha = 1.0
)

// RGBA is a cell colour with a fractional alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts c to a non-premultiplied image colour.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// HoverInfluence returns the glow weight of the pointer on the point (x, y).
// A non-positive radius disables the glow.
func HoverInfluence(h HoverState, x, y float64) float64 {
	if h.Radius <= 0 {
		return 0
	}
	d := math.Min(math.Hypot(h.X-x, h.Y-y)/h.Radius, 1)
	return math.Pow(1-d, hoverFalloff) * h.GlowAlpha
}

// ColorFor blends a cell's grey shade toward the dominant accent at the cell
// centre (x, y). The strongest ripple beats the hover glow only when strictly
// greater; ties keep the hover accent.
func ColorFor(cell Cell, x, y float64, hover HoverState, ripples []*Ripple) RGBA {
	influence := HoverInfluence(hover, x, y)
	accent := HoverAccent
	if rippleInf, c, ok := strongest(ripples, x, y); ok && rippleInf > influence {
		influence, accent = rippleInf, c
	}
	shade := float64(cell.Shade)
	return RGBA{
		R: lerpChannel(shade, accent.R, influence),
		G: lerpChannel(shade, accent.G, influence),
		B: lerpChannel(shade, accent.B, influence),
		A: baseAlpha*(1-influence) + accentAlpha*influence,
	}
}

func lerpChannel(base float64, accent uint8, t float64) uint8 {
	v := math.Round(base + (float64(accent)-base)*t)
	return uint8(math.Max(0, math.Min(255, v)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
