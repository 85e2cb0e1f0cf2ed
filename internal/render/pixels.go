package render

import (
	"image"
	"image/color"

	"matrix-bg/internal/matrix"

	"github.com/lucasb-eyer/go-colorful"
)

// Backdrop is the colour glyphs are composited over on surfaces without
// alpha.
var Backdrop = color.RGBA{R: 8, G: 8, B: 12, A: 255}

// OverBackground flattens c onto an opaque background.
func OverBackground(c matrix.RGBA, bg color.Color) (r, g, b uint8) {
	base, _ := colorful.MakeColor(bg)
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return base.BlendRgb(fg, clamp01(c.A)).Clamped().RGB255()
}

// Premultiplied converts c to a premultiplied image colour.
func Premultiplied(c matrix.RGBA) color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// fillCellRGBA writes one NRGBA pixel per cell colour into buf.
func fillCellRGBA(buf []byte, colors []matrix.RGBA) {
	for i, c := range colors {
		base := i * 4
		px := c.NRGBA()
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// CellImage renders colors as a cols×rows image, one pixel per cell. Missing
// cells stay transparent.
func CellImage(colors []matrix.RGBA, cols, rows int) *image.NRGBA {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	n := cols * rows
	if len(colors) < n {
		n = len(colors)
	}
	fillCellRGBA(img.Pix, colors[:n])
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
