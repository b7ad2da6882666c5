package core

import "time"

// DefaultStep is used when a non-positive step length is requested.
const DefaultStep = time.Second / 60

// FixedStep releases logic ticks at a constant interval measured against
// caller-supplied timestamps, independent of how often it is polled.
type FixedStep struct {
	step time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick length.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	return fs
}

// SetStep changes the tick length. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = DefaultStep
	}
	f.step = step
}

// Step returns the current tick length.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset makes now the reference point for the next tick.
func (f *FixedStep) Reset(now time.Time) { f.last = now }

// Last returns the timestamp of the most recently released tick.
func (f *FixedStep) Last() time.Time { return f.last }

// ShouldStep reports whether a full tick has elapsed since the last released
// tick and, if so, advances the reference point by exactly one tick length.
// Callers loop on it to catch up after a stall.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	next := f.last.Add(f.step)
	if now.Before(next) {
		return false
	}
	f.last = next
	return true
}
