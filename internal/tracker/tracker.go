// Package tracker assembles the repetition-counting pipeline for one
// exercise: descriptor lookup, pose-frame projection, and the windowed
// repetition counter.
package tracker

import (
	"errors"
	"fmt"

	"github.com/banshee-data/repcount/internal/exercise"
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/pose"
	"github.com/banshee-data/repcount/internal/timeutil"
)

// ErrUnknownExercise is returned when a tracker is requested for an
// action-type name with no registered descriptor.
var ErrUnknownExercise = errors.New("unknown exercise type")

// Tracker counts repetitions of one exercise from a stream of pose frames
// and an external action classification signal. A Tracker tracks a single
// exercise for its whole lifetime; use Reset to start a new session with
// the same exercise.
//
// Like the underlying counter, a Tracker assumes single-writer access:
// callers feeding frames and signals from different goroutines must
// serialize externally.
type Tracker struct {
	descriptor exercise.Descriptor
	joints     map[string]bool
	counter    *motion.RepCounter
}

// New creates a tracker for the named exercise, looking the descriptor up
// in reg. Construction fails with ErrUnknownExercise when the name is not
// registered; no partial object is created. A nil clock defaults to the
// real clock.
func New(reg *exercise.Registry, name string, params motion.CounterParams, clock timeutil.Clock) (*Tracker, error) {
	descriptor, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return &Tracker{
		descriptor: descriptor,
		joints:     descriptor.JointSet(),
		counter:    motion.NewRepCounter(name, descriptor.Pattern, params, clock),
	}, nil
}

// Subscribe installs the listener on the underlying counter, which
// immediately delivers one synchronous count notification.
func (t *Tracker) Subscribe(l motion.Listener) {
	t.counter.Subscribe(l)
}

// ProcessFrame projects the tracked joint out of one pose frame and feeds
// it to the counter. A frame without any relevant joint contributes no
// sample this tick.
func (t *Tracker) ProcessFrame(f pose.Frame) {
	value, ok := pose.Project(f, t.joints, t.descriptor.Axis)
	if !ok {
		return
	}
	t.counter.Append(value)
}

// Append feeds an already-projected position sample directly, bypassing
// frame geometry. Replay tooling uses this path.
func (t *Tracker) Append(value float64) {
	t.counter.Append(value)
}

// RegisterActionDetection forwards one action classification signal.
func (t *Tracker) RegisterActionDetection(actionType string) {
	t.counter.RegisterActionDetection(actionType)
}

// Count returns the current repetition count.
func (t *Tracker) Count() int { return t.counter.Count() }

// Descriptor returns the exercise descriptor the tracker was built from.
func (t *Tracker) Descriptor() exercise.Descriptor { return t.descriptor }

// Extrema returns a copy of the accepted extremum sequence.
func (t *Tracker) Extrema() []motion.Extremum { return t.counter.Extrema() }

// Windows returns a copy of the recorded action-window timeline.
func (t *Tracker) Windows() []motion.Window { return t.counter.Windows() }

// Smoothed returns a copy of the smoothed sample history.
func (t *Tracker) Smoothed() []motion.Sample { return t.counter.Smoothed() }

// Reset clears all session state and sets the count to zero.
func (t *Tracker) Reset() {
	t.counter.Reset()
}
