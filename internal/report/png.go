// internal/report/png.go
package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoChart is returned when a PNG is requested for a panel that shows a
// placeholder instead of a chart.
var ErrNoChart = errors.New("no chart for the current selection")

var pngPalette = []drawing.Color{
	{R: 99, G: 110, B: 250, A: 255},
	{R: 239, G: 85, B: 59, A: 255},
	{R: 0, G: 204, B: 150, A: 255},
	{R: 171, G: 99, B: 250, A: 255},
	{R: 255, G: 161, B: 90, A: 255},
	{R: 25, G: 211, B: 243, A: 255},
}

const (
	pngMinWidth    = 640
	pngWidthPerBar = 110
	pngBarWidth    = 60
)

func pngWidth(bars int) int {
	if w := bars * pngWidthPerBar; w > pngMinWidth {
		return w
	}
	return pngMinWidth
}

func fixedFormatter(decimals int) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("%.*f", decimals, f)
		}
		return fmt.Sprint(v)
	}
}

// performanceValues flattens the grouped chart model by model, each bar
// coloured by its metric. go-chart draws no value labels, so the formatted
// score goes under each bar with its model and metric.
func performanceValues(c PerformanceChart) []chart.Value {
	var bars []chart.Value
	for _, model := range c.Models {
		for i, metric := range c.Metrics {
			for _, b := range c.Bars {
				if b.Model != model || b.Metric != metric {
					continue
				}
				color := pngPalette[i%len(pngPalette)]
				bars = append(bars, chart.Value{
					Label: fmt.Sprintf("%s %s %s", b.Model, b.Metric, b.Label),
					Value: b.Score,
					Style: chart.Style{FillColor: color, StrokeColor: color},
				})
			}
		}
	}
	return bars
}

// fairnessValues returns one bar per model, labelled with its formatted value.
func fairnessValues(p FairnessPanel) []chart.Value {
	bars := make([]chart.Value, len(p.Bars))
	for i, b := range p.Bars {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s %s", b.Model, b.Label),
			Value: b.Value,
			Style: chart.Style{FillColor: pngPalette[0], StrokeColor: pngPalette[0]},
		}
	}
	return bars
}

// WritePerformancePNG draws the performance chart as a PNG.
func WritePerformancePNG(w io.Writer, c PerformanceChart) error {
	if !c.HasChart() {
		return ErrNoChart
	}

	bars := performanceValues(c)

	bc := chart.BarChart{
		Title:      "Performance",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 64}},
		Width:      pngWidth(len(bars)),
		Height:     PerformanceChartHeight,
		BarWidth:   pngBarWidth,
		YAxis: chart.YAxis{
			Name:           "Score",
			Range:          &chart.ContinuousRange{Min: c.YMin, Max: c.YMax},
			ValueFormatter: fixedFormatter(2),
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render performance png: %w", err)
	}
	return nil
}

// WriteFairnessPNG draws one fairness panel as a PNG. Bars grow from zero so
// negative parity differences point down.
func WriteFairnessPNG(w io.Writer, p FairnessPanel, height int) error {
	if !p.HasChart() {
		return ErrNoChart
	}
	if height <= 0 {
		height = FairnessChartHeight
	}

	lo, hi := 0.0, 0.0
	for _, b := range p.Bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	bars := fairnessValues(p)
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 0.01
	}

	bc := chart.BarChart{
		Title:        p.Title,
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 64}},
		Width:        pngWidth(len(bars) * 2),
		Height:       height,
		BarWidth:     pngBarWidth,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Name:           "Value",
			Range:          &chart.ContinuousRange{Min: lo - pad, Max: hi + pad},
			ValueFormatter: fixedFormatter(p.Decimals),
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render fairness png %q: %w", p.Label, err)
	}
	return nil
}

// FindPanel returns the fairness panel for label, if the dashboard has one.
func (d Dashboard) FindPanel(label string) (FairnessPanel, bool) {
	for _, p := range d.Fairness {
		if p.Label == label {
			return p, true
		}
	}
	return FairnessPanel{}, false
}
