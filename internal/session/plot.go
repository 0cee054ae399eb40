package session

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/repcount/internal/motion"
)

// WritePlot renders the raw and smoothed position signal of a replayed
// session, with confirmed extrema marked, to a PNG file.
func WritePlot(path string, rec *Recording, res *Result) error {
	if len(rec.Samples) == 0 {
		return fmt.Errorf("recording %s has no samples to plot", rec.ID)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s session %s (count=%d)", rec.Exercise, rec.ID, res.Count)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Normalized position"

	rawPts := make(plotter.XYs, len(rec.Samples))
	values := make([]float64, len(rec.Samples))
	for i, s := range rec.Samples {
		rawPts[i] = plotter.XY{X: s.OffsetMs / 1000.0, Y: s.Value}
		values[i] = s.Value
	}

	rawLine, err := plotter.NewLine(rawPts)
	if err != nil {
		return fmt.Errorf("raw series: %w", err)
	}
	rawLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	rawLine.Width = vg.Points(1)
	p.Add(rawLine)
	p.Legend.Add("raw", rawLine)

	offsetSecs := func(s motion.Sample) float64 {
		return s.Timestamp.Sub(rec.CreatedAt).Seconds()
	}

	if len(res.Smoothed) > 0 {
		smoothPts := make(plotter.XYs, len(res.Smoothed))
		for i, s := range res.Smoothed {
			smoothPts[i] = plotter.XY{X: offsetSecs(s), Y: s.Value}
		}
		smoothLine, err := plotter.NewLine(smoothPts)
		if err != nil {
			return fmt.Errorf("smoothed series: %w", err)
		}
		smoothLine.Color = color.RGBA{R: 30, G: 100, B: 200, A: 255}
		smoothLine.Width = vg.Points(2)
		p.Add(smoothLine)
		p.Legend.Add("smoothed", smoothLine)
	}

	if len(res.Extrema) > 0 {
		extPts := make(plotter.XYs, len(res.Extrema))
		for i, e := range res.Extrema {
			extPts[i] = plotter.XY{X: offsetSecs(e.Sample), Y: e.Sample.Value}
		}
		scatter, err := plotter.NewScatter(extPts)
		if err != nil {
			return fmt.Errorf("extrema series: %w", err)
		}
		scatter.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
		scatter.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("extrema", scatter)
	}

	// Pad the value axis so flat signals stay readable.
	lo, hi := floats.Min(values), floats.Max(values)
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 0.1
	}
	p.Y.Min = lo - pad
	p.Y.Max = hi + pad

	p.Legend.Top = true

	if err := p.Save(14*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save session plot: %w", err)
	}
	return nil
}
