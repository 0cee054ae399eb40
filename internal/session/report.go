package session

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteReport renders a self-contained HTML report of a replayed session:
// raw vs smoothed signal with one mark per confirmed extremum, plus the
// session summary in the chart header.
func WriteReport(path string, rec *Recording, res *Result) error {
	if len(rec.Samples) == 0 {
		return fmt.Errorf("recording %s has no samples to report", rec.ID)
	}

	summary := Summarize(rec, res)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Repetition Session Report",
			Theme:     "dark",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s session %s", rec.Exercise, rec.ID),
			Subtitle: fmt.Sprintf("count=%d windows=%d extrema=%d samples=%d duration=%s",
				summary.RepCount, summary.WindowCount, summary.ExtremaSeen,
				summary.SampleCount, summary.Duration),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "position"}),
	)

	xAxis := make([]string, len(rec.Samples))
	rawData := make([]opts.LineData, len(rec.Samples))
	for i, s := range rec.Samples {
		xAxis[i] = fmt.Sprintf("%.2f", s.OffsetMs/1000.0)
		rawData[i] = opts.LineData{Value: s.Value}
	}
	line.SetXAxis(xAxis)
	line.AddSeries("raw", rawData)

	if len(res.Smoothed) > 0 {
		// Align the smoothed series to the raw x-axis by offset; the
		// smoothed history is one point per raw append once warmed up, so
		// it maps onto the tail of the axis.
		smoothData := make([]opts.LineData, len(rec.Samples))
		for i := range smoothData {
			smoothData[i] = opts.LineData{Value: nil}
		}
		head := len(rec.Samples) - len(res.Smoothed)
		if head < 0 {
			head = 0
		}
		for i, s := range res.Smoothed {
			if head+i < len(smoothData) {
				smoothData[head+i] = opts.LineData{Value: s.Value}
			}
		}
		line.AddSeries("smoothed", smoothData)
	}

	if len(res.Extrema) > 0 {
		scatter := charts.NewScatter()
		extData := make([]opts.ScatterData, len(res.Extrema))
		for i, e := range res.Extrema {
			offset := e.Sample.Timestamp.Sub(rec.CreatedAt).Seconds()
			extData[i] = opts.ScatterData{
				Value:      []interface{}{fmt.Sprintf("%.2f", offset), e.Sample.Value},
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("extrema", extData)
		line.Overlap(scatter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("render session report: %w", err)
	}
	return nil
}
