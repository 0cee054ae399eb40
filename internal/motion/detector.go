package motion

import (
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/repcount/internal/timeutil"
)

// Detector defaults, chosen empirically against recorded tracking sessions.
const (
	// DefaultSmoothingWindow is the number of raw samples averaged into one
	// smoothed point.
	DefaultSmoothingWindow = 20
	// DefaultAnalysisWindow is the number of trailing smoothed points
	// re-scanned for new extrema on every update.
	DefaultAnalysisWindow = 6
)

// DetectorParams holds tuning parameters for the extrema detector.
type DetectorParams struct {
	SmoothingWindow int // raw samples per smoothed point, e.g. 20
	AnalysisWindow  int // trailing smoothed points scanned per update, e.g. 6
}

// DefaultDetectorParams returns the default detector configuration.
func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		SmoothingWindow: DefaultSmoothingWindow,
		AnalysisWindow:  DefaultAnalysisWindow,
	}
}

// ExtremumHandler receives confirmed extrema synchronously from inside
// Append. The handler must not re-enter the detector.
type ExtremumHandler func(Extremum)

// ExtremaDetector smooths a stream of raw scalar samples with a trailing
// moving average and confirms local extrema as soon as enough smoothed
// context exists. Re-scanning a short trailing window on every update lets
// a point be confirmed as early as possible, while the absolute-position
// set prevents re-emitting the same peak as the window slides past it.
type ExtremaDetector struct {
	params  DetectorParams
	clock   timeutil.Clock
	handler ExtremumHandler

	raw      []Sample
	smoothed []Sample
	reported map[int]struct{}
	winVals  []float64 // scratch buffer for the smoothing mean
}

// NewExtremaDetector creates a detector. The handler may be nil, in which
// case confirmed extrema are discarded. A nil clock defaults to RealClock.
func NewExtremaDetector(params DetectorParams, clock timeutil.Clock, handler ExtremumHandler) *ExtremaDetector {
	if params.SmoothingWindow <= 0 {
		params.SmoothingWindow = DefaultSmoothingWindow
	}
	if params.AnalysisWindow < 3 {
		params.AnalysisWindow = DefaultAnalysisWindow
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &ExtremaDetector{
		params:   params,
		clock:    clock,
		handler:  handler,
		reported: make(map[int]struct{}),
		winVals:  make([]float64, params.SmoothingWindow),
	}
}

// Append accepts one new raw sample, stamped with the clock's current time,
// and confirms at most one new extremum per kind. Notifications are
// delivered synchronously before Append returns, Minimum before Maximum
// when both fire on the same update.
func (d *ExtremaDetector) Append(value float64) {
	d.raw = append(d.raw, Sample{Timestamp: d.clock.Now(), Value: value})

	w := d.params.SmoothingWindow
	if len(d.raw) < w {
		return
	}

	// One smoothed point per append once warmed up: the trailing mean of the
	// last w raw values, stamped at the midpoint of the window.
	window := d.raw[len(d.raw)-w:]
	for i, s := range window {
		d.winVals[i] = s.Value
	}
	first, last := window[0].Timestamp, window[w-1].Timestamp
	d.smoothed = append(d.smoothed, Sample{
		Timestamp: first.Add(last.Sub(first) / 2),
		Value:     stat.Mean(d.winVals, nil),
	})

	p := d.params.AnalysisWindow
	if len(d.smoothed) < p {
		return
	}

	tail := d.smoothed[len(d.smoothed)-p:]
	base := len(d.smoothed) - p

	for _, kind := range kinds {
		sign := kind.sign()
		// Interior points only; the earliest classified index wins.
		for i := 1; i < p-1; i++ {
			if sign*tail[i].Value > sign*tail[i-1].Value && sign*tail[i].Value >= sign*tail[i+1].Value {
				pos := base + i
				if _, seen := d.reported[pos]; !seen {
					d.reported[pos] = struct{}{}
					if d.handler != nil {
						d.handler(Extremum{Position: pos, Sample: tail[i], Kind: kind})
					}
				}
				break
			}
		}
	}
}

// Smoothed returns a copy of the smoothed sample history accumulated in the
// current session.
func (d *ExtremaDetector) Smoothed() []Sample {
	out := make([]Sample, len(d.smoothed))
	copy(out, d.smoothed)
	return out
}

// Reset clears all internal history unconditionally. It is idempotent and
// delivers no notifications for points lost this way.
func (d *ExtremaDetector) Reset() {
	d.raw = nil
	d.smoothed = nil
	d.reported = make(map[int]struct{})
}
