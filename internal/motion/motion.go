// Package motion implements the streaming signal core of the repetition
// counter: incremental smoothing and extrema confirmation over a scalar
// position signal, fixed-pattern matching over the confirmed extremum
// sequence, and the time-window gated repetition state machine.
//
// Everything in this package is single-threaded and synchronous. Listener
// callbacks are delivered from inside the triggering call; a listener must
// not re-enter the same detector or counter instance from its callback.
// Callers feeding samples and action signals from multiple goroutines must
// serialize access externally.
package motion

import "time"

// ExtremumKind classifies a confirmed local extremum in the smoothed signal.
type ExtremumKind int

const (
	// Minimum is a confirmed local minimum.
	Minimum ExtremumKind = iota
	// Maximum is a confirmed local maximum.
	Maximum
)

// kinds enumerates the closed kind set in stable order. Detection iterates
// this order, so when both kinds confirm on one update the Minimum is
// reported first.
var kinds = [...]ExtremumKind{Minimum, Maximum}

// sign returns +1 for Maximum and -1 for Minimum, letting a single
// comparison classify both kinds.
func (k ExtremumKind) sign() float64 {
	if k == Maximum {
		return 1
	}
	return -1
}

// String returns a human-readable name for the kind.
func (k ExtremumKind) String() string {
	switch k {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	default:
		return "unknown"
	}
}

// Sample is one timestamped scalar observation. Samples are immutable once
// created; the detector produces one per append.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// Extremum is a confirmed local extremum in the smoothed sample history.
// Position is the absolute index into the smoothed history at the moment of
// confirmation. Instances are never mutated after creation.
type Extremum struct {
	Position int
	Sample   Sample
	Kind     ExtremumKind
}

// Window is a closed interval of timestamps during which the tracked action
// was reported as in progress.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, inclusive at both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
