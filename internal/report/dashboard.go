// internal/report/dashboard.go
// Package report turns a selection into the dashboard view model and renders
// it as an HTML page, static images, a workbook, structured data or text.
package report

import (
	"fmt"

	"github.com/mwiater/fraudlens/internal/results"
	"github.com/mwiater/fraudlens/internal/selection"
)

const (
	// PageTitle heads every rendering of the dashboard.
	PageTitle = "Fairness‑Aware Fraud Detection — Results"

	// PerformanceYMin and PerformanceYMax fix the score axis. The headroom
	// above 1 leaves space for labels drawn above the tallest bars.
	PerformanceYMin = 0.0
	PerformanceYMax = 1.05

	PerformanceChartHeight = 420
	FairnessChartHeight    = 380

	// FairnessColumns is the number of fairness charts per grid row.
	FairnessColumns = 2
)

// Placeholder messages shown instead of a chart.
const (
	NoPerfMetricsMessage     = "Select at least one performance metric from the third dropdown."
	NoPerformanceDataMessage = "No performance data for the selected model(s)."
	NoFairnessMetricsMessage = "Select at least one fairness metric from the second dropdown."
)

// NoFairnessDataMessage is the placeholder for a fairness chart with no rows.
func NoFairnessDataMessage(label string) string {
	return fmt.Sprintf("No data for %s.", label)
}

// Notes is the fixed footnote shown under the charts.
var Notes = []string{
	"Performance metrics reflect final Non‑SMOTE (custom weighting) models.",
	"You can select multiple fairness metrics at once (e.g., SPD, DPD, EOD, Equalized Odds, and MACE for Gender/Age).",
	"For fairness: values near 0 are desirable for SPD/DPD/EOD/Equalized Odds; lower is better for MACE (overall).",
}

// ScoreBar is one bar of the performance chart.
type ScoreBar struct {
	Model  string  `json:"model" yaml:"model"`
	Metric string  `json:"metric" yaml:"metric"`
	Score  float64 `json:"score" yaml:"score"`
	Label  string  `json:"label" yaml:"label"`
}

// MetricSeries holds one metric's scores across the charted models.
type MetricSeries struct {
	Metric string
	Values []float64
	Labels []string
}

// PerformanceChart is the grouped performance bar chart, or its placeholder.
type PerformanceChart struct {
	Models      []string   `json:"models" yaml:"models"`
	Metrics     []string   `json:"metrics" yaml:"metrics"`
	Bars        []ScoreBar `json:"bars" yaml:"bars"`
	YMin        float64    `json:"y_min" yaml:"y_min"`
	YMax        float64    `json:"y_max" yaml:"y_max"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// HasChart reports whether the chart has bars to draw.
func (c PerformanceChart) HasChart() bool {
	return c.Placeholder == "" && len(c.Bars) > 0
}

// Series groups the bars by metric, one value per charted model.
func (c PerformanceChart) Series() []MetricSeries {
	series := make([]MetricSeries, 0, len(c.Metrics))
	for _, metric := range c.Metrics {
		s := MetricSeries{
			Metric: metric,
			Values: make([]float64, len(c.Models)),
			Labels: make([]string, len(c.Models)),
		}
		for i, model := range c.Models {
			for _, bar := range c.Bars {
				if bar.Model == model && bar.Metric == metric {
					s.Values[i] = bar.Score
					s.Labels[i] = bar.Label
					break
				}
			}
		}
		series = append(series, s)
	}
	return series
}

// FairnessBar is one model's bar in a fairness chart.
type FairnessBar struct {
	Model string  `json:"model" yaml:"model"`
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

// FairnessPanel is one cell of the fairness grid: a chart or a placeholder.
type FairnessPanel struct {
	Label       string        `json:"label" yaml:"label"`
	Metric      string        `json:"metric" yaml:"metric"`
	Subgroup    string        `json:"subgroup" yaml:"subgroup"`
	Title       string        `json:"title" yaml:"title"`
	Decimals    int           `json:"decimals" yaml:"decimals"`
	Bars        []FairnessBar `json:"bars" yaml:"bars"`
	Placeholder string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// HasChart reports whether the panel has bars to draw.
func (p FairnessPanel) HasChart() bool {
	return p.Placeholder == "" && len(p.Bars) > 0
}

// Dashboard is everything one render shows, derived from a single selection.
type Dashboard struct {
	Title               string              `json:"title" yaml:"title"`
	Options             selection.Options   `json:"options" yaml:"options"`
	Selection           selection.Selection `json:"selection" yaml:"selection"`
	Performance         PerformanceChart    `json:"performance" yaml:"performance"`
	Fairness            []FairnessPanel     `json:"fairness" yaml:"fairness"`
	FairnessPlaceholder string              `json:"fairness_placeholder,omitempty" yaml:"fairness_placeholder,omitempty"`
	Notes               []string            `json:"notes" yaml:"notes"`
}

// FairnessGrid lays the fairness panels out in rows of FairnessColumns, in
// selection order.
func (d Dashboard) FairnessGrid() [][]FairnessPanel {
	var grid [][]FairnessPanel
	for i := 0; i < len(d.Fairness); i += FairnessColumns {
		end := i + FairnessColumns
		if end > len(d.Fairness) {
			end = len(d.Fairness)
		}
		grid = append(grid, d.Fairness[i:end])
	}
	return grid
}

// Build renders the compiled-in tables for a selection. It has no side
// effects and returns the same dashboard for the same selection.
func Build(opts selection.Options, sel selection.Selection) Dashboard {
	return build(results.Performance(), results.Fairness(), opts, sel)
}

func build(perf []results.PerformanceRow, fair []results.FairnessRow, opts selection.Options, sel selection.Selection) Dashboard {
	d := Dashboard{
		Title:       PageTitle,
		Options:     opts,
		Selection:   sel,
		Performance: buildPerformance(perf, sel),
		Notes:       append([]string{}, Notes...),
	}

	if len(sel.FairnessLabels) == 0 {
		d.FairnessPlaceholder = NoFairnessMetricsMessage
		return d
	}
	d.Fairness = make([]FairnessPanel, 0, len(sel.FairnessLabels))
	for _, label := range sel.FairnessLabels {
		d.Fairness = append(d.Fairness, buildFairnessPanel(fair, opts, label, sel.Models))
	}
	return d
}

func buildPerformance(perf []results.PerformanceRow, sel selection.Selection) PerformanceChart {
	chart := PerformanceChart{
		Metrics: append([]string{}, sel.PerfMetrics...),
		YMin:    PerformanceYMin,
		YMax:    PerformanceYMax,
	}
	if len(sel.PerfMetrics) == 0 {
		chart.Placeholder = NoPerfMetricsMessage
		return chart
	}

	rows := selection.FilterPerformance(perf, sel.Models)
	for _, row := range rows {
		chart.Models = append(chart.Models, row.Model)
	}
	for _, score := range selection.Melt(rows, sel.PerfMetrics) {
		chart.Bars = append(chart.Bars, ScoreBar{
			Model:  score.Model,
			Metric: score.Metric,
			Score:  score.Score,
			Label:  FormatScore(score.Score),
		})
	}
	if len(chart.Bars) == 0 {
		chart.Placeholder = NoPerformanceDataMessage
	}
	return chart
}

func buildFairnessPanel(fair []results.FairnessRow, opts selection.Options, label string, models []string) FairnessPanel {
	panel := FairnessPanel{Label: label}
	opt, ok := opts.Lookup(label)
	if !ok {
		panel.Placeholder = NoFairnessDataMessage(label)
		return panel
	}
	panel.Metric = opt.Metric
	panel.Subgroup = opt.Subgroup
	panel.Title = fmt.Sprintf("%s (%s)", opt.Metric, opt.Subgroup)
	panel.Decimals = FairnessPrecision(opt.Metric)

	rows := selection.FilterFairness(fair, opt, models)
	if len(rows) == 0 {
		panel.Placeholder = NoFairnessDataMessage(label)
		return panel
	}
	for _, row := range rows {
		panel.Bars = append(panel.Bars, FairnessBar{
			Model: row.Model,
			Value: row.Value,
			Label: FormatFairness(row.Metric, row.Value),
		})
	}
	return panel
}
