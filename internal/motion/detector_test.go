package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/repcount/internal/timeutil"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// feed appends values to the detector, advancing the clock by step before
// each append so every raw sample carries a distinct timestamp.
func feed(d *ExtremaDetector, clock *timeutil.MockClock, step time.Duration, values ...float64) {
	for _, v := range values {
		clock.Advance(step)
		d.Append(v)
	}
}

func TestDetectorWarmup(t *testing.T) {
	t.Parallel()

	clock := timeutil.NewMockClock(testEpoch)
	var got []Extremum
	d := NewExtremaDetector(DefaultDetectorParams(), clock, func(e Extremum) {
		got = append(got, e)
	})

	// Streams shorter than the smoothing window never emit anything.
	for i := 0; i < DefaultSmoothingWindow-1; i++ {
		feed(d, clock, 33*time.Millisecond, float64(i%3))
	}
	assert.Empty(t, got)
	assert.Empty(t, d.Smoothed())
}

func TestDetectorSinglePeak(t *testing.T) {
	t.Parallel()

	clock := timeutil.NewMockClock(testEpoch)
	var got []Extremum
	d := NewExtremaDetector(DefaultDetectorParams(), clock, func(e Extremum) {
		got = append(got, e)
	})

	// A rise followed by a fall with asymmetric slopes keeps the smoothed
	// series free of plateaus, so it has exactly one unambiguous peak.
	v := 0.0
	for i := 0; i < 40; i++ {
		v += 1.0
		feed(d, clock, 33*time.Millisecond, v)
	}
	for i := 0; i < 40; i++ {
		v -= 0.7
		feed(d, clock, 33*time.Millisecond, v)
	}

	require.Len(t, got, 1)
	assert.Equal(t, Maximum, got[0].Kind)

	smoothed := d.Smoothed()
	require.NotEmpty(t, smoothed)
	require.Less(t, got[0].Position, len(smoothed))
	// The reported sample is the largest smoothed value.
	for _, s := range smoothed {
		assert.LessOrEqual(t, s.Value, got[0].Sample.Value)
	}
	assert.Equal(t, smoothed[got[0].Position], got[0].Sample)
}

func TestDetectorExactPositionsAndDedup(t *testing.T) {
	t.Parallel()

	// SmoothingWindow 1 makes the smoothed history identical to the raw
	// stream, so positions can be pinned exactly.
	params := DetectorParams{SmoothingWindow: 1, AnalysisWindow: 3}
	clock := timeutil.NewMockClock(testEpoch)
	var got []Extremum
	d := NewExtremaDetector(params, clock, func(e Extremum) {
		got = append(got, e)
	})

	feed(d, clock, 100*time.Millisecond, 0, 1, 0)
	require.Len(t, got, 1)
	assert.Equal(t, Maximum, got[0].Kind)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, 1.0, got[0].Sample.Value)

	// The trailing window keeps sliding over position 1; it must never be
	// re-reported. The flat tail confirms one minimum at position 2 and
	// nothing else.
	feed(d, clock, 100*time.Millisecond, 0, 0, 0, 0, 0)
	require.Len(t, got, 2)
	assert.Equal(t, Minimum, got[1].Kind)
	assert.Equal(t, 2, got[1].Position)
}

func TestDetectorMinBeforeMaxOnSameUpdate(t *testing.T) {
	t.Parallel()

	params := DetectorParams{SmoothingWindow: 1, AnalysisWindow: 6}
	clock := timeutil.NewMockClock(testEpoch)
	var got []Extremum
	d := NewExtremaDetector(params, clock, func(e Extremum) {
		got = append(got, e)
	})

	// Both a minimum (index 1) and a maximum (index 4) become confirmable on
	// the same update; kind enumeration order reports the minimum first.
	feed(d, clock, 100*time.Millisecond, 5, 1, 2, 3, 4, 0)
	require.Len(t, got, 2)
	assert.Equal(t, Minimum, got[0].Kind)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, Maximum, got[1].Kind)
	assert.Equal(t, 4, got[1].Position)
}

func TestDetectorSmoothedTimestampMidpoint(t *testing.T) {
	t.Parallel()

	params := DetectorParams{SmoothingWindow: 3, AnalysisWindow: 3}
	clock := timeutil.NewMockClock(testEpoch)
	d := NewExtremaDetector(params, clock, nil)

	feed(d, clock, 100*time.Millisecond, 1, 2, 3)
	smoothed := d.Smoothed()
	require.Len(t, smoothed, 1)
	assert.InDelta(t, 2.0, smoothed[0].Value, 1e-12)
	// Window spans t+100ms..t+300ms; the midpoint is t+200ms.
	assert.Equal(t, testEpoch.Add(200*time.Millisecond), smoothed[0].Timestamp)
}

func TestDetectorReset(t *testing.T) {
	t.Parallel()

	params := DetectorParams{SmoothingWindow: 1, AnalysisWindow: 3}
	clock := timeutil.NewMockClock(testEpoch)
	var got []Extremum
	d := NewExtremaDetector(params, clock, func(e Extremum) {
		got = append(got, e)
	})

	run := func() []Extremum {
		got = nil
		feed(d, clock, 100*time.Millisecond, 0, 1, 0, 1, 0)
		return got
	}

	first := run()
	require.NotEmpty(t, first)

	d.Reset()
	assert.Empty(t, d.Smoothed())
	d.Reset() // idempotent

	second := run()
	require.Len(t, second, len(first))
	for i := range first {
		// Identical positions, kinds, and values; timestamps differ because
		// the clock kept moving.
		assert.Equal(t, first[i].Position, second[i].Position)
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Sample.Value, second[i].Sample.Value)
	}
}
