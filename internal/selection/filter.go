// internal/selection/filter.go
package selection

import (
	"sort"

	"github.com/mwiater/fraudlens/internal/results"
)

// Score is one (model, metric, score) point of the reshaped performance table.
type Score struct {
	Model  string  `json:"model" yaml:"model"`
	Metric string  `json:"metric" yaml:"metric"`
	Score  float64 `json:"score" yaml:"score"`
}

// FilterPerformance keeps the rows whose model is selected, in table order.
func FilterPerformance(rows []results.PerformanceRow, models []string) []results.PerformanceRow {
	out := make([]results.PerformanceRow, 0, len(rows))
	for _, row := range rows {
		if Contains(models, row.Model) {
			out = append(out, row)
		}
	}
	return out
}

// Melt reshapes performance rows into long form: for each selected metric,
// one Score per row. Unknown metric names are skipped.
func Melt(rows []results.PerformanceRow, metrics []string) []Score {
	out := make([]Score, 0, len(rows)*len(metrics))
	for _, metric := range metrics {
		for _, row := range rows {
			v, ok := row.Score(metric)
			if !ok {
				continue
			}
			out = append(out, Score{Model: row.Model, Metric: metric, Score: v})
		}
	}
	return out
}

// FilterFairness keeps the rows for one metric/subgroup pair whose model is
// selected, sorted by model name.
func FilterFairness(rows []results.FairnessRow, opt FairnessOption, models []string) []results.FairnessRow {
	out := make([]results.FairnessRow, 0, len(models))
	for _, row := range rows {
		if row.Metric != opt.Metric || row.Subgroup != opt.Subgroup {
			continue
		}
		if !Contains(models, row.Model) {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out
}
