package docparse

import "github.com/jonathan/portfolio-builder/internal/types"

// ProgressFunc receives parse progress notifications. It is invoked on
// the calling goroutine; percentages for a single parse are strictly
// increasing and the final notification always carries 100.
type ProgressFunc func(types.Progress)

// emitter enforces the monotonicity guarantee for one parse call.
// Notifications that would not increase the percentage are dropped.
type emitter struct {
	fn   ProgressFunc
	last int
}

func (e *emitter) emit(step string, percent int, conf float64) {
	if e.fn == nil {
		return
	}
	if percent > 100 {
		percent = 100
	}
	if percent <= e.last {
		return
	}
	e.last = percent
	e.fn(types.Progress{Step: step, Percent: percent, Confidence: conf})
}
