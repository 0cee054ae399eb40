package session

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a replayed session for display.
type Summary struct {
	SessionID   string
	Exercise    string
	Duration    time.Duration
	SampleCount int
	SignalCount int
	ValueMean   float64
	ValueStdDev float64
	ExtremaSeen int
	WindowCount int
	RepCount    int
}

// Summarize computes session statistics from a recording and its replay
// result.
func Summarize(rec *Recording, res *Result) Summary {
	values := make([]float64, len(rec.Samples))
	for i, s := range rec.Samples {
		values[i] = s.Value
	}

	var mean, std float64
	if len(values) > 0 {
		mean, std = stat.MeanStdDev(values, nil)
	}

	return Summary{
		SessionID:   rec.ID,
		Exercise:    rec.Exercise,
		Duration:    rec.Duration(),
		SampleCount: len(rec.Samples),
		SignalCount: len(rec.Signals),
		ValueMean:   mean,
		ValueStdDev: std,
		ExtremaSeen: len(res.Extrema),
		WindowCount: len(res.Windows),
		RepCount:    res.Count,
	}
}
