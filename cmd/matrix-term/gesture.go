package main

import (
	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"

	"github.com/gdamore/tcell/v2"
)

// mouseGesture maps tcell mouse and focus events onto a Pointer. Terminals
// do not report the mouse leaving the window, so losing focus stands in
// for it.
type mouseGesture struct {
	term    *render.Terminal
	pointer *matrix.Pointer
	down    bool
}

// handle forwards ev and reports whether it was a pointer event.
func (g *mouseGesture) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := g.term.ClientPoint(ev.Position())
		pressed := ev.Buttons()&tcell.Button1 != 0
		g.pointer.Move(x, y)
		switch {
		case pressed && !g.down:
			g.pointer.Down(x, y)
		case !pressed && g.down:
			g.pointer.Up()
		}
		g.down = pressed
	case *tcell.EventFocus:
		if !ev.Focused {
			g.down = false
			g.pointer.Leave()
		}
	default:
		return false
	}
	return true
}
