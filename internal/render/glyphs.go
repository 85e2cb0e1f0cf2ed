//go:build ebiten

package render

import (
	"image"

	"matrix-bg/internal/matrix"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Glyphs paints matrix glyphs onto an ebiten image, centred on the
// requested coordinates.
type Glyphs struct {
	dst    *ebiten.Image
	face   font.Face
	scale  float64
	bounds map[rune]image.Rectangle
	op     ebiten.DrawImageOptions
}

// NewGlyphs returns a glyph painter using the built-in 7x13 face.
func NewGlyphs() *Glyphs {
	return &Glyphs{
		face:   basicfont.Face7x13,
		scale:  1,
		bounds: make(map[rune]image.Rectangle),
	}
}

// Target sets the image painted by subsequent calls.
func (g *Glyphs) Target(dst *ebiten.Image) { g.dst = dst }

// Clear fills the target with Backdrop.
func (g *Glyphs) Clear() {
	if g.dst != nil {
		g.dst.Fill(Backdrop)
	}
}

// SetFont scales the face so glyphs are roughly px pixels tall.
func (g *Glyphs) SetFont(px int) {
	h := g.face.Metrics().Height.Ceil()
	if px <= 0 || h <= 0 {
		g.scale = 1
		return
	}
	g.scale = float64(px) / float64(h)
}

// FillGlyph draws ch centred on (x, y) in colour c.
func (g *Glyphs) FillGlyph(ch rune, x, y float64, c matrix.RGBA) {
	if g.dst == nil {
		return
	}
	b, ok := g.bounds[ch]
	if !ok {
		b = text.BoundString(g.face, string(ch))
		g.bounds[ch] = b
	}
	g.op.GeoM.Reset()
	g.op.GeoM.Translate(-float64(b.Min.X)-float64(b.Dx())/2, -float64(b.Min.Y)-float64(b.Dy())/2)
	g.op.GeoM.Scale(g.scale, g.scale)
	g.op.GeoM.Translate(x, y)
	g.op.ColorScale.Reset()
	g.op.ColorScale.ScaleWithColor(Premultiplied(c))
	text.DrawWithOptions(g.dst, string(ch), g.face, &g.op)
}
