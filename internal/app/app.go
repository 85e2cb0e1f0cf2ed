//go:build ebiten

package app

import (
	"image"
	"log"
	"time"

	"matrix-bg/internal/core"
	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"
	"matrix-bg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowGeometry reports the current logical window size as the container.
type windowGeometry struct {
	w, h int
}

func (g *windowGeometry) Bounds() core.Rect {
	return core.Rect{W: float64(g.w), H: float64(g.h)}
}

// Game adapts a matrix background to the ebiten.Game interface.
type Game struct {
	loop    *matrix.Loop
	pointer *matrix.Pointer
	glyphs  *render.Glyphs
	frames  *core.FrameQueue
	geom    *windowGeometry
	overlay *ui.Overlay
	logger  *log.Logger

	seed     int64
	cursor   image.Point
	hovering bool
	touch    touchGesture
	touchID  ebiten.TouchID
}

// New constructs a Game for cfg. If the background cannot start the game
// still runs and draws nothing but the backdrop.
func New(cfg matrix.Config, logger *log.Logger, showOverlay bool) *Game {
	g := &Game{
		glyphs:  render.NewGlyphs(),
		frames:  core.NewFrameQueue(),
		geom:    &windowGeometry{},
		overlay: ui.NewOverlay(showOverlay),
		logger:  logger,
		seed:    cfg.Seed,
	}
	loop, err := matrix.New(cfg, g.glyphs, g.geom)
	if err != nil {
		logger.Printf("matrix: background inactive: %v", err)
	}
	loop.SetLogger(logger)
	loop.Start(g.frames)
	g.loop = loop
	g.pointer = matrix.NewPointer(loop, nil)
	g.touch.pointer = g.pointer
	return g
}

// Reset reseeds the background.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.loop.Reset(seed)
}

// Update handles keyboard, mouse and touch input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()

	g.updateMouse()
	g.updateTouch()
	return nil
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	inside := pos.In(image.Rect(0, 0, g.geom.w, g.geom.h))
	switch {
	case inside && (!g.hovering || pos != g.cursor):
		g.pointer.Move(float64(x), float64(y))
	case !inside && g.hovering:
		g.pointer.Leave()
	}
	g.cursor, g.hovering = pos, inside

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointer.Down(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointer.Up()
	}
}

// updateTouch follows the first touch only.
func (g *Game) updateTouch() {
	if !g.touch.down {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touchID = ids[0]
			g.touch.begin(image.Pt(ebiten.TouchPosition(g.touchID)))
		}
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touch.end()
		return
	}
	g.touch.move(image.Pt(ebiten.TouchPosition(g.touchID)))
}

// Draw runs one background frame per display refresh.
func (g *Game) Draw(screen *ebiten.Image) {
	g.glyphs.Target(screen)
	if g.frames.Flush() == 0 {
		screen.Fill(render.Backdrop)
	}
	g.overlay.Draw(screen, g.loop.Parameters())
}

// Layout tracks the window size and rebuilds the grid when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.geom.w || outsideHeight != g.geom.h {
		g.geom.w, g.geom.h = outsideWidth, outsideHeight
		g.loop.Resize()
	}
	return outsideWidth, outsideHeight
}
