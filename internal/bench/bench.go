// Package bench drives matrix loops headless with a scripted gesture and
// reports what they painted.
package bench

import (
	"math"
	"sync"
	"time"

	"matrix-bg/internal/core"
	"matrix-bg/internal/matrix"
	"matrix-bg/internal/render"
)

// Options controls one scripted run.
type Options struct {
	Frames int
	Width  float64
	Height float64
	// Drag holds the pointer down for the first three quarters of the run.
	Drag bool
	// FrameTime is the simulated time between frames seen by the drag
	// throttle.
	FrameTime time.Duration
}

// DefaultOptions returns a ten second run at 60 frames per second.
func DefaultOptions() Options {
	return Options{Frames: 600, Width: 1280, Height: 720, Drag: true, FrameTime: time.Second / 60}
}

// Result summarises a run.
type Result struct {
	Seed         int64
	Frames       uint64
	Cols, Rows   int
	Glyphs       int
	PeakRipples  int
	MeanAccented float64
	FinalRipples int
	Elapsed      time.Duration
	// Last holds the colours of the final frame in row-major order.
	Last []matrix.RGBA
}

// stepClock advances a fixed amount on every call to tick.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) tick() { c.now = c.now.Add(c.step) }

// Run paints opts.Frames frames while the pointer circles the container
// centre.
func Run(cfg matrix.Config, opts Options) (Result, error) {
	rec := render.NewRecorder()
	loop, err := matrix.New(cfg, rec, matrix.StaticGeometry{W: opts.Width, H: opts.Height})
	if err != nil {
		return Result{}, err
	}
	clk := &stepClock{now: time.Unix(0, 0), step: opts.FrameTime}
	pointer := matrix.NewPointer(loop, clk)
	frames := core.NewFrameQueue()
	loop.Start(frames)
	defer loop.Stop()

	res := Result{Seed: loop.Config().Seed, Cols: loop.Grid().Cols, Rows: loop.Grid().Rows}
	cx, cy := opts.Width/2, opts.Height/2
	orbit := math.Min(opts.Width, opts.Height) / 3
	release := opts.Frames * 3 / 4
	accented := 0

	start := time.Now()
	for i := 0; i < opts.Frames; i++ {
		angle := float64(i) * 0.05
		x, y := cx+math.Cos(angle)*orbit, cy+math.Sin(angle)*orbit
		pointer.Move(x, y)
		if opts.Drag && i == 0 {
			pointer.Down(x, y)
		}
		if i == release {
			pointer.Up()
		}
		frames.Flush()
		clk.tick()

		accented += rec.Accented()
		if n := loop.Ripples().Len(); n > res.PeakRipples {
			res.PeakRipples = n
		}
	}
	res.Elapsed = time.Since(start)

	st := loop.Stats()
	res.Frames = st.Frames
	res.FinalRipples = st.Ripples
	res.Glyphs = rec.Glyphs
	if opts.Frames > 0 {
		res.MeanAccented = float64(accented) / float64(opts.Frames)
	}
	res.Last = append([]matrix.RGBA(nil), rec.Frame()...)
	return res, nil
}

// Sweep runs one independent loop per seed across workers goroutines.
// Results are returned in seed order.
func Sweep(cfg matrix.Config, opts Options, seeds []int64, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	type job struct {
		idx  int
		seed int64
	}
	jobs := make(chan job)
	results := make([]Result, len(seeds))
	errs := make([]error, len(seeds))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := cfg
				c.Seed = j.seed
				results[j.idx], errs[j.idx] = Run(c, opts)
			}
		}()
	}
	for i, s := range seeds {
		jobs <- job{idx: i, seed: s}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
