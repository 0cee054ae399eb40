package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/repcount/internal/exercise"
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/pose"
	"github.com/banshee-data/repcount/internal/timeutil"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// passthroughParams makes the smoothed history identical to the raw stream
// so test waveforms translate directly into extrema.
func passthroughParams() motion.CounterParams {
	params := motion.DefaultCounterParams()
	params.Detector = motion.DetectorParams{SmoothingWindow: 1, AnalysisWindow: 3}
	return params
}

func TestNewUnknownExercise(t *testing.T) {
	t.Parallel()

	reg := exercise.DefaultRegistry()
	tr, err := New(reg, "deadlift", motion.DefaultCounterParams(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownExercise)
	assert.Nil(t, tr)
}

func TestNewKnownExercise(t *testing.T) {
	t.Parallel()

	reg := exercise.DefaultRegistry()
	tr, err := New(reg, "squat", motion.DefaultCounterParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, "squat", tr.Descriptor().Name)
	assert.Equal(t, 0, tr.Count())
}

func TestProcessFrameCountsReps(t *testing.T) {
	t.Parallel()

	reg := exercise.DefaultRegistry()
	clock := timeutil.NewMockClock(testEpoch)
	tr, err := New(reg, "squat", passthroughParams(), clock)
	require.NoError(t, err)

	frame := func(hipY float64) pose.Frame {
		return pose.StaticFrame{
			Points: []pose.Landmark{{Joint: "hip_left", X: 320, Y: hipY}},
			Width:  640,
			Height: 480,
		}
	}

	// Hip descends (y grows), bottoms out, and returns: one squat. Signals
	// every tick keep one action window open across the whole motion.
	tr.RegisterActionDetection("squat")
	for _, y := range []float64{200, 420, 200, 420, 200} {
		clock.Advance(100 * time.Millisecond)
		tr.RegisterActionDetection("squat")
		tr.ProcessFrame(frame(y))
	}

	assert.Equal(t, 1, tr.Count())
	require.Len(t, tr.Windows(), 1)
	assert.NotEmpty(t, tr.Extrema())
	assert.NotEmpty(t, tr.Smoothed())
}

func TestProcessFrameMissingJoint(t *testing.T) {
	t.Parallel()

	reg := exercise.DefaultRegistry()
	clock := timeutil.NewMockClock(testEpoch)
	tr, err := New(reg, "squat", passthroughParams(), clock)
	require.NoError(t, err)

	// A frame without any relevant joint is ignored for that tick, not an
	// error: the smoothed history stays empty.
	tr.ProcessFrame(pose.StaticFrame{
		Points: []pose.Landmark{{Joint: "wrist_left", X: 10, Y: 10}},
		Width:  640,
		Height: 480,
	})
	assert.Empty(t, tr.Smoothed())
}

func TestTrackerReset(t *testing.T) {
	t.Parallel()

	reg := exercise.DefaultRegistry()
	clock := timeutil.NewMockClock(testEpoch)
	tr, err := New(reg, "squat", passthroughParams(), clock)
	require.NoError(t, err)

	tr.RegisterActionDetection("squat")
	for _, v := range []float64{0.4, 0.9, 0.4, 0.9, 0.4} {
		clock.Advance(100 * time.Millisecond)
		tr.RegisterActionDetection("squat")
		tr.Append(v)
	}
	require.Equal(t, 1, tr.Count())

	tr.Reset()
	assert.Equal(t, 0, tr.Count())
	assert.Empty(t, tr.Extrema())
	assert.Empty(t, tr.Windows())
}
