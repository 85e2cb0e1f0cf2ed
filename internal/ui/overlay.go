//go:build ebiten

package ui

import (
	"image/color"

	"matrix-bg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	glyphWidth   = 7
)

// Overlay draws the loop statistics panel. D toggles it.
type Overlay struct {
	visible bool
	panel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(visible bool) *Overlay {
	return &Overlay{visible: visible}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders snap in the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.ParameterSnapshot) {
	if !o.visible {
		return
	}
	lines := overlayLines(snap)
	if len(lines) == 0 {
		return
	}
	w := widest(lines)*glyphWidth + 2*panelPadding
	h := len(lines)*lineHeight + 2*panelPadding
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	face := basicfont.Face7x13
	for i, line := range lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line != "" && line[0] != ' ' {
			fg = color.RGBA{R: 255, G: 122, B: 0, A: 255}
		}
		text.Draw(o.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, fg)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(o.panel, op)
}
