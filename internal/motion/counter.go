package motion

import (
	"math"
	"time"

	"github.com/banshee-data/repcount/internal/timeutil"
)

// Counter defaults, chosen empirically against recorded tracking sessions.
const (
	// DefaultSignificanceDelta is the minimum value difference between two
	// consecutively accepted extrema. Anything closer is treated as noise.
	DefaultSignificanceDelta = 0.03
	// DefaultFaultTolerance is the maximum gap between two "active" action
	// signals before they are treated as two separate action windows.
	DefaultFaultTolerance = 500 * time.Millisecond
)

// CounterParams holds tuning parameters for the repetition counter.
type CounterParams struct {
	SignificanceDelta float64       // e.g. 0.03 in normalized units
	FaultTolerance    time.Duration // e.g. 500ms
	Detector          DetectorParams
}

// DefaultCounterParams returns the default counter configuration.
func DefaultCounterParams() CounterParams {
	return CounterParams{
		SignificanceDelta: DefaultSignificanceDelta,
		FaultTolerance:    DefaultFaultTolerance,
		Detector:          DefaultDetectorParams(),
	}
}

// Listener receives counter notifications. All callbacks are synchronous,
// delivered from inside the triggering call on the caller's goroutine. The
// counter holds a non-owning reference and never calls the listener after
// the counter itself is gone; a listener must not re-enter the counter from
// inside a callback.
type Listener interface {
	// RepCountChanged reports the new repetition count. It is also invoked
	// exactly once at subscription time with the then-current count.
	RepCountChanged(count int)
	// ActionBegan reports that a new action window opened. The fault
	// tolerance in force is passed along for display purposes.
	ActionBegan(tolerance time.Duration)
	// ActionEnded reports that the open action window closed.
	ActionEnded(tolerance time.Duration)
}

// ListenerFuncs adapts plain closures to the Listener interface. Nil fields
// are simply skipped.
type ListenerFuncs struct {
	OnRepCountChanged func(count int)
	OnActionBegan     func(tolerance time.Duration)
	OnActionEnded     func(tolerance time.Duration)
}

// RepCountChanged implements Listener.
func (l ListenerFuncs) RepCountChanged(count int) {
	if l.OnRepCountChanged != nil {
		l.OnRepCountChanged(count)
	}
}

// ActionBegan implements Listener.
func (l ListenerFuncs) ActionBegan(tolerance time.Duration) {
	if l.OnActionBegan != nil {
		l.OnActionBegan(tolerance)
	}
}

// ActionEnded implements Listener.
func (l ListenerFuncs) ActionEnded(tolerance time.Duration) {
	if l.OnActionEnded != nil {
		l.OnActionEnded(tolerance)
	}
}

// RepCounter reconciles confirmed extrema with an externally reported
// "action in progress" signal and derives a repetition count. It owns one
// ExtremaDetector and is driven by two inputs: Append for position samples
// and RegisterActionDetection for the action classification signal.
//
// The count is never stored independently of its recomputation rule: it is
// always the number of pattern-match completions whose extremum timestamp
// lies inside some recorded action window. Within a session the published
// count is monotonic non-decreasing; Reset starts a new session at zero.
type RepCounter struct {
	actionType string
	pattern    []ExtremumKind
	params     CounterParams
	clock      timeutil.Clock
	detector   *ExtremaDetector

	extrema     []Extremum
	kindSeq     []ExtremumKind
	windows     []Window
	lastMatched bool
	count       int
	listener    Listener
}

// NewRepCounter creates a counter for the given action type and expected
// extremum-kind pattern. A nil clock defaults to RealClock.
func NewRepCounter(actionType string, pattern []ExtremumKind, params CounterParams, clock timeutil.Clock) *RepCounter {
	if params.SignificanceDelta <= 0 {
		params.SignificanceDelta = DefaultSignificanceDelta
	}
	if params.FaultTolerance <= 0 {
		params.FaultTolerance = DefaultFaultTolerance
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	c := &RepCounter{
		actionType: actionType,
		pattern:    append([]ExtremumKind(nil), pattern...),
		params:     params,
		clock:      clock,
	}
	c.detector = NewExtremaDetector(params.Detector, clock, c.onExtremum)
	return c
}

// Subscribe installs the listener and immediately delivers one synchronous
// count notification with the current count. This is an initial-state sync,
// not a change event.
func (c *RepCounter) Subscribe(l Listener) {
	c.listener = l
	if l != nil {
		l.RepCountChanged(c.count)
	}
}

// Append feeds one raw position sample into the owned detector. Extremum
// confirmation, significance filtering, and any resulting count change all
// complete synchronously before Append returns.
func (c *RepCounter) Append(value float64) {
	c.detector.Append(value)
}

// onExtremum is the detector handler: the extremum accumulation automaton.
func (c *RepCounter) onExtremum(e Extremum) {
	if n := len(c.extrema); n > 0 {
		last := c.extrema[n-1]
		if math.Abs(e.Sample.Value-last.Sample.Value) < c.params.SignificanceDelta {
			// Noise, not an error: discard silently.
			return
		}
	}
	c.extrema = append(c.extrema, e)
	c.kindSeq = append(c.kindSeq, e.Kind)
	c.recount()
}

// RegisterActionDetection feeds one external action classification signal,
// stamped with the clock's current time: the action-window automaton.
//
// A signal matching the counter's action type extends the most recent
// window when the gap since its end is within the fault tolerance, and
// opens a fresh window otherwise. A non-matching signal closes the window
// opened by a preceding matching signal; a second consecutive non-matching
// signal is a no-op.
func (c *RepCounter) RegisterActionDetection(actionType string) {
	now := c.clock.Now()
	matched := actionType == c.actionType

	if matched {
		if n := len(c.windows); n > 0 && now.Sub(c.windows[n-1].End) <= c.params.FaultTolerance {
			c.windows[n-1].End = now
		} else {
			c.windows = append(c.windows, Window{Start: now, End: now})
			if c.listener != nil {
				c.listener.ActionBegan(c.params.FaultTolerance)
			}
		}
	} else if c.lastMatched && len(c.windows) > 0 {
		c.windows[len(c.windows)-1].End = now
		if c.listener != nil {
			c.listener.ActionEnded(c.params.FaultTolerance)
		}
	}

	c.lastMatched = matched
}

// recount re-runs the pattern matcher over the accepted extremum kinds and
// publishes the gated match count when it changed. Accepting an extremum is
// the only trigger for recomputation.
func (c *RepCounter) recount() {
	n := 0
	for _, end := range MatchPattern(c.pattern, c.kindSeq) {
		if c.inWindow(c.extrema[end].Sample.Timestamp) {
			n++
		}
	}
	if n != c.count {
		c.count = n
		if c.listener != nil {
			c.listener.RepCountChanged(n)
		}
	}
}

func (c *RepCounter) inWindow(t time.Time) bool {
	for _, w := range c.windows {
		if w.Contains(t) {
			return true
		}
	}
	return false
}

// Count returns the current repetition count.
func (c *RepCounter) Count() int {
	return c.count
}

// ActionType returns the action type this counter tracks.
func (c *RepCounter) ActionType() string {
	return c.actionType
}

// Extrema returns a copy of the accepted extremum sequence.
func (c *RepCounter) Extrema() []Extremum {
	out := make([]Extremum, len(c.extrema))
	copy(out, c.extrema)
	return out
}

// Windows returns a copy of the recorded action-window timeline.
func (c *RepCounter) Windows() []Window {
	out := make([]Window, len(c.windows))
	copy(out, c.windows)
	return out
}

// Smoothed returns a copy of the detector's smoothed sample history.
func (c *RepCounter) Smoothed() []Sample {
	return c.detector.Smoothed()
}

// Reset clears the detector, the accepted extremum sequence, the action
// window timeline, and the signal flag, and sets the count to zero. No
// count notification is emitted for the zero.
func (c *RepCounter) Reset() {
	c.detector.Reset()
	c.extrema = nil
	c.kindSeq = nil
	c.windows = nil
	c.lastMatched = false
	c.count = 0
}
