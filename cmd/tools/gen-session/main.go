// Command gen-session generates a synthetic tracking session: a noisy
// sinusoidal position signal spanning a configurable number of
// repetitions, with the action classifier reported active across the
// motion. Useful for exercising the replay pipeline without captured pose
// data.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/banshee-data/repcount/internal/session"
)

var (
	outFile    = flag.String("o", "session.json", "Output session file")
	exerciseID = flag.String("exercise", "squat", "Exercise action-type name")
	reps       = flag.Int("reps", 5, "Number of repetitions to synthesize")
	periodMs   = flag.Float64("period-ms", 2000, "Duration of one repetition in milliseconds")
	tickMs     = flag.Float64("tick-ms", 33, "Sample spacing in milliseconds (≈30fps default)")
	signalMs   = flag.Float64("signal-ms", 250, "Classifier signal spacing in milliseconds")
	noise      = flag.Float64("noise", 0.01, "Gaussian noise stddev added to each sample")
	center     = flag.Float64("center", 0.5, "Center of the normalized motion range")
	amplitude  = flag.Float64("amplitude", 0.2, "Amplitude of the normalized motion")
	leadMs     = flag.Float64("lead-ms", 1000, "Idle lead-in before the motion starts")
	seed       = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	rec := session.NewRecording(*exerciseID, time.Now().UTC())

	motionStart := *leadMs
	motionEnd := motionStart + float64(*reps)*(*periodMs)
	total := motionEnd + *leadMs

	for at := 0.0; at <= total; at += *tickMs {
		value := *center
		if at >= motionStart && at <= motionEnd {
			phase := 2 * math.Pi * (at - motionStart) / *periodMs
			value += *amplitude * math.Sin(phase)
		}
		value += rng.NormFloat64() * *noise
		rec.Samples = append(rec.Samples, session.RecordedSample{OffsetMs: at, Value: value})
	}

	// Classifier marks the action active only across the motion span.
	for at := motionStart; at <= motionEnd; at += *signalMs {
		rec.Signals = append(rec.Signals, session.SignalMark{OffsetMs: at, Action: *exerciseID})
	}
	rec.Signals = append(rec.Signals, session.SignalMark{OffsetMs: motionEnd + *tickMs, Action: "idle"})

	if err := rec.Save(*outFile); err != nil {
		log.Fatalf("gen-session: %v", err)
	}
	log.Printf("wrote %s: %s x%d reps, %d samples, %d signals (seed=%d)",
		*outFile, *exerciseID, *reps, len(rec.Samples), len(rec.Signals), *seed)
}
