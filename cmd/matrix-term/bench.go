package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"runtime"
	"time"

	"matrix-bg/internal/bench"
	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"

	"github.com/shirou/gopsutil/v3/process"
)

type benchOptions struct {
	frames  int
	width   int
	height  int
	seeds   int
	workers int
	drag    bool
	pngPath string
}

func execBench(w io.Writer, cfg matrix.Config, opts benchOptions) error {
	if opts.seeds <= 0 {
		opts.seeds = 1
	}
	if opts.workers <= 0 {
		opts.workers = runtime.NumCPU()
	}
	seeds := make([]int64, opts.seeds)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}
	runOpts := bench.DefaultOptions()
	runOpts.Frames = opts.frames
	runOpts.Width = float64(opts.width)
	runOpts.Height = float64(opts.height)
	runOpts.Drag = opts.drag

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return fmt.Errorf("inspect process: %w", err)
	}
	start := time.Now()
	results, err := bench.Sweep(cfg, runOpts, seeds, opts.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, res := range results {
		perFrame := time.Duration(0)
		if res.Frames > 0 {
			perFrame = res.Elapsed / time.Duration(res.Frames)
		}
		fmt.Fprintf(w, "seed %d: %dx%d cells, %d frames in %s (%s/frame), peak ripples %d, final ripples %d, mean accented %.1f\n",
			res.Seed, res.Cols, res.Rows, res.Frames, res.Elapsed.Round(time.Millisecond), perFrame, res.PeakRipples, res.FinalRipples, res.MeanAccented)
	}
	fmt.Fprintf(w, "total elapsed %s across %d workers\n", elapsed.Round(time.Millisecond), opts.workers)

	if cpu, err := proc.CPUPercent(); err == nil {
		fmt.Fprintf(w, "process cpu %.1f%%\n", cpu)
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		fmt.Fprintf(w, "process rss %.1f MiB\n", float64(mem.RSS)/(1<<20))
	}

	if opts.pngPath != "" && len(results) > 0 {
		if err := writePNG(opts.pngPath, results[0]); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", opts.pngPath)
	}
	return nil
}

func writePNG(path string, res bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, render.CellImage(res.Last, res.Cols, res.Rows)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
