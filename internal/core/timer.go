// Package core holds front-end plumbing shared by the GUI and headless
// runners.
package core

import "time"

// FixedStep decides when the next generation is due. Time accumulates
// between calls so that a slow frame is caught up by the following ones,
// one generation per call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps generations per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// NewFixedStepInterval constructs a FixedStep that fires every interval.
// An interval of zero fires on every call.
func NewFixedStepInterval(interval time.Duration) *FixedStep {
	if interval < 0 {
		interval = 0
	}
	return &FixedStep{step: interval, accumulator: interval, now: time.Now}
}

// SetTPS changes the rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the current step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops accumulated time so the next generation is a full interval
// away, used after the grid is reseeded.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether a generation is due.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
