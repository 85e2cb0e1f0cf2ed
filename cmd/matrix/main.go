//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"matrix-bg/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	mcfg, err := cfg.Matrix(flag.CommandLine)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	game := app.New(mcfg, logger, cfg.Overlay)

	ebiten.SetWindowTitle("matrix-bg")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
