package render

import "matrix-bg/internal/matrix"

// accentThreshold separates tinted glyphs from plain grey ones.
const accentThreshold = 0.36

// Recorder is a headless matrix.Surface that keeps the last painted frame.
type Recorder struct {
	Frames int
	Glyphs int
	Font   int

	frame   []matrix.RGBA
	runes   []rune
	accents int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Frames++
	r.frame = r.frame[:0]
	r.runes = r.runes[:0]
	r.accents = 0
}

// SetFont records the requested glyph size.
func (r *Recorder) SetFont(px int) { r.Font = px }

// FillGlyph records one painted glyph.
func (r *Recorder) FillGlyph(ch rune, _, _ float64, c matrix.RGBA) {
	r.Glyphs++
	r.frame = append(r.frame, c)
	r.runes = append(r.runes, ch)
	if c.A > accentThreshold {
		r.accents++
	}
}

// Frame returns the colours of the last frame in paint order.
func (r *Recorder) Frame() []matrix.RGBA { return r.frame }

// Runes returns the glyphs of the last frame in paint order.
func (r *Recorder) Runes() []rune { return r.runes }

// Accented counts glyphs of the last frame tinted by hover or ripples.
func (r *Recorder) Accented() int { return r.accents }
