package matrix

const (
	// FarAway is the pointer coordinate used while no pointer is present.
	FarAway = -9999

	hoverBoost   = 1.2
	hoverEase    = 0.08
	glowDecay    = 0.96
	hoverFalloff = 2.2
)

// HoverAccent is the glow colour around the pointer.
var HoverAccent = RGB{R: 255, G: 122, B: 0}

// HoverState tracks the pointer glow.
type HoverState struct {
	X, Y       float64
	GlowAlpha  float64
	Radius     float64
	RadiusBase float64
}

// NewHoverState returns a hover state with the pointer parked far away and no
// glow.
func NewHoverState(radiusBase float64) HoverState {
	return HoverState{X: FarAway, Y: FarAway, Radius: radiusBase, RadiusBase: radiusBase}
}

// Move places the pointer at (x, y), refreshes the glow and briefly enlarges
// the radius.
func (h *HoverState) Move(x, y float64) {
	h.X, h.Y = x, y
	h.GlowAlpha = 1
	h.Radius = h.RadiusBase * hoverBoost
}

// Leave parks the pointer far outside the grid.
func (h *HoverState) Leave() {
	h.X, h.Y = FarAway, FarAway
}

// Decay eases the radius back to its base and fades the glow.
func (h *HoverState) Decay() {
	h.Radius += (h.RadiusBase - h.Radius) * hoverEase
	h.GlowAlpha *= glowDecay
}

// SetRadiusBase changes the resting radius and snaps the current radius to it.
func (h *HoverState) SetRadiusBase(base float64) {
	h.RadiusBase = base
	h.Radius = base
}
