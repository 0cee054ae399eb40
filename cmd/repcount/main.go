// Command repcount replays a recorded tracking session through the
// repetition-counting pipeline and reports what was counted. It can also
// render the session signal as a PNG plot or a standalone HTML report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/repcount/internal/config"
	"github.com/banshee-data/repcount/internal/exercise"
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/session"
	"github.com/banshee-data/repcount/internal/version"
)

var (
	sessionFile = flag.String("session", "", "Path to a recorded session JSON file (required)")
	configFile  = flag.String("config", "", "Optional tuning config JSON file")
	plotFile    = flag.String("plot", "", "Write a PNG plot of the session to this path")
	reportFile  = flag.String("report", "", "Write an HTML report of the session to this path")
	verbose     = flag.Bool("v", false, "Log count changes and window events during replay")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *sessionFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		log.Fatalf("repcount: %v", err)
	}
}

func run() error {
	params := motion.DefaultCounterParams()
	if *configFile != "" {
		cfg, err := config.LoadTuningConfig(*configFile)
		if err != nil {
			return err
		}
		params = cfg.CounterParams()
	}

	rec, err := session.Load(*sessionFile)
	if err != nil {
		return err
	}

	res, err := session.Replay(rec, exercise.DefaultRegistry(), params)
	if err != nil {
		return err
	}

	summary := session.Summarize(rec, res)
	fmt.Printf("session   %s\n", summary.SessionID)
	fmt.Printf("exercise  %s\n", summary.Exercise)
	fmt.Printf("duration  %s (%d samples, %d signals)\n", summary.Duration, summary.SampleCount, summary.SignalCount)
	fmt.Printf("signal    mean=%.4f stddev=%.4f\n", summary.ValueMean, summary.ValueStdDev)
	fmt.Printf("extrema   %d confirmed, %d action windows\n", summary.ExtremaSeen, summary.WindowCount)
	fmt.Printf("reps      %d\n", summary.RepCount)

	if *verbose {
		for i, w := range res.Windows {
			log.Printf("window %d: %s -> %s", i, w.Start.Format("15:04:05.000"), w.End.Format("15:04:05.000"))
		}
		log.Printf("count changes: %v (begans=%d endeds=%d)", res.CountChanges, res.ActionsBegan, res.ActionsEnded)
	}

	if *plotFile != "" {
		if err := session.WritePlot(*plotFile, rec, res); err != nil {
			return err
		}
		log.Printf("wrote plot to %s", *plotFile)
	}

	if *reportFile != "" {
		if err := session.WriteReport(*reportFile, rec, res); err != nil {
			return err
		}
		log.Printf("wrote report to %s", *reportFile)
	}

	return nil
}
