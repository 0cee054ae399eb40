package session

import (
	"time"

	"github.com/banshee-data/repcount/internal/exercise"
	"github.com/banshee-data/repcount/internal/monitoring"
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/timeutil"
	"github.com/banshee-data/repcount/internal/tracker"
)

// Result holds everything observable from one replayed session.
type Result struct {
	Count        int
	CountChanges []int // includes the initial subscription sync
	ActionsBegan int
	ActionsEnded int
	Windows      []motion.Window
	Extrema      []motion.Extremum
	Smoothed     []motion.Sample
}

// Replay drives a fresh tracker through the recording on a mock clock, so
// replaying the same recording always yields the same result. At equal
// offsets classification signals are applied before position samples,
// matching the live pipeline where the classifier output for a frame
// arrives ahead of its landmark projection.
func Replay(rec *Recording, reg *exercise.Registry, params motion.CounterParams) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	clock := timeutil.NewMockClock(rec.CreatedAt)
	tr, err := tracker.New(reg, rec.Exercise, params, clock)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	tr.Subscribe(motion.ListenerFuncs{
		OnRepCountChanged: func(count int) {
			res.CountChanges = append(res.CountChanges, count)
		},
		OnActionBegan: func(time.Duration) { res.ActionsBegan++ },
		OnActionEnded: func(time.Duration) { res.ActionsEnded++ },
	})

	at := func(offsetMs float64) time.Time {
		return rec.CreatedAt.Add(time.Duration(offsetMs * float64(time.Millisecond)))
	}

	si, pi := 0, 0
	for si < len(rec.Signals) || pi < len(rec.Samples) {
		signalNext := si < len(rec.Signals) &&
			(pi >= len(rec.Samples) || rec.Signals[si].OffsetMs <= rec.Samples[pi].OffsetMs)
		if signalNext {
			clock.Set(at(rec.Signals[si].OffsetMs))
			tr.RegisterActionDetection(rec.Signals[si].Action)
			si++
		} else {
			clock.Set(at(rec.Samples[pi].OffsetMs))
			tr.Append(rec.Samples[pi].Value)
			pi++
		}
	}

	res.Count = tr.Count()
	res.Windows = tr.Windows()
	res.Extrema = tr.Extrema()
	res.Smoothed = tr.Smoothed()

	monitoring.Logf("replayed session %s (%s): %d samples, %d signals, %d windows, count=%d",
		rec.ID, rec.Exercise, len(rec.Samples), len(rec.Signals), len(res.Windows), res.Count)

	return res, nil
}
