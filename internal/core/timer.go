package core

import "time"

// FixedStep helps run updates at a steady ticks-per-second rate.
type FixedStep struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. A
// nil clock reads the wall clock.
func NewFixedStep(tps int, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock{}
	}
	fs := &FixedStep{clock: clock}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the caller should advance by one tick. Backlog
// is capped at one tick so a stalled host does not burst frames afterwards.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
