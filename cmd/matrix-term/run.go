package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matrix-bg/internal/core"
	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
)

// pollInterval is the granularity at which the FixedStep pacer is checked.
const pollInterval = 4 * time.Millisecond

type runOptions struct {
	fps     int
	logPath string
}

func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

func execRun(ctx context.Context, cfg matrix.Config, opts runOptions) error {
	logger, closeLog, err := openLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	encoding.Register()
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	term := render.NewTerminal(screen, render.DefaultTerminalCellPx)
	loop, err := matrix.New(cfg, term, term)
	if err != nil {
		logger.Printf("matrix: background inactive: %v", err)
	}
	loop.SetLogger(logger)
	frames := core.NewFrameQueue()
	loop.Start(frames)
	defer loop.Stop()
	gesture := &mouseGesture{term: term, pointer: matrix.NewPointer(loop, nil)}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	pacer := core.NewFixedStep(opts.fps, nil)
	fps := opts.fps
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'r':
					loop.Reset(cfg.Seed)
				case ev.Rune() == '+':
					fps = min(fps+5, 120)
					pacer.SetTPS(fps)
				case ev.Rune() == '-':
					fps = max(fps-5, 5)
					pacer.SetTPS(fps)
				}
			case *tcell.EventResize:
				screen.Sync()
				loop.Resize()
			default:
				gesture.handle(ev)
			}
		case <-ticker.C:
			if !pacer.ShouldStep() {
				continue
			}
			if frames.Flush() > 0 {
				screen.Show()
			}
		}
	}
}
