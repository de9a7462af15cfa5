package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolio-builder/internal/types"
)

func TestEmitterMonotonicity(t *testing.T) {
	var got []types.Progress
	e := &emitter{fn: func(p types.Progress) { got = append(got, p) }}

	e.emit("start", 5, 1.0)
	e.emit("repeat", 5, 1.0)   // duplicate percent dropped
	e.emit("backward", 3, 1.0) // regression dropped
	e.emit("middle", 50, 0.8)
	e.emit("overflow", 250, 1.0) // capped at 100
	e.emit("after end", 100, 1.0)

	var percents []int
	for _, p := range got {
		percents = append(percents, p.Percent)
	}
	assert.Equal(t, []int{5, 50, 100}, percents)

	for i := 1; i < len(percents); i++ {
		assert.Greater(t, percents[i], percents[i-1])
	}
}

func TestEmitterNilCallback(t *testing.T) {
	e := &emitter{}
	assert.NotPanics(t, func() { e.emit("step", 10, 1.0) })
}

func TestEmitterCarriesStepAndConfidence(t *testing.T) {
	var got []types.Progress
	e := &emitter{fn: func(p types.Progress) { got = append(got, p) }}

	e.emit("Loading PDF document", 5, 1.0)
	e.emit("Extracting text content", 20, 0.9)

	assert.Equal(t, []types.Progress{
		{Step: "Loading PDF document", Percent: 5, Confidence: 1.0},
		{Step: "Extracting text content", Percent: 20, Confidence: 0.9},
	}, got)
}
