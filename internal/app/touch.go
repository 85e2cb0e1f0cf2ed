package app

import (
	"image"

	"matrix-bg/internal/matrix"
)

// touchGesture forwards a single touch to a Pointer. Held touches only
// report a move when the finger changes position.
type touchGesture struct {
	pointer *matrix.Pointer
	down    bool
	pos     image.Point
}

func (t *touchGesture) begin(pos image.Point) {
	t.down, t.pos = true, pos
	t.pointer.Down(float64(pos.X), float64(pos.Y))
}

func (t *touchGesture) move(pos image.Point) {
	if !t.down || pos == t.pos {
		return
	}
	t.pos = pos
	t.pointer.Move(float64(pos.X), float64(pos.Y))
}

func (t *touchGesture) end() {
	if !t.down {
		return
	}
	t.down = false
	t.pointer.Up()
}
