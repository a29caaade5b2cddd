// internal/selection/selection.go
// Package selection models the three dashboard selectors (models, fairness
// metric/subgroup pairs, performance metrics) and narrows the result tables
// to what a selection asks for.
package selection

import (
	"github.com/mwiater/fraudlens/internal/results"
)

// LabelSeparator joins a fairness metric and subgroup in an option label.
const LabelSeparator = " — "

// FairnessOption is a selectable (metric, subgroup) pair that has data.
type FairnessOption struct {
	Label    string `json:"label" yaml:"label"`
	Metric   string `json:"metric" yaml:"metric"`
	Subgroup string `json:"subgroup" yaml:"subgroup"`
}

// Options is the universe each selector chooses from.
type Options struct {
	Models      []string         `json:"models" yaml:"models"`
	Fairness    []FairnessOption `json:"fairness" yaml:"fairness"`
	PerfMetrics []string         `json:"performance" yaml:"performance"`
}

// Selection is the user's current choice in each selector. Order is
// significant: fairness charts are laid out in FairnessLabels order.
type Selection struct {
	Models         []string `json:"models" yaml:"models"`
	FairnessLabels []string `json:"fairness" yaml:"fairness"`
	PerfMetrics    []string `json:"performance" yaml:"performance"`
}

// OptionLabel builds the display label for a metric/subgroup pair.
func OptionLabel(metric, subgroup string) string {
	return metric + LabelSeparator + subgroup
}

// FairnessOptions derives the fairness selector options: metrics in
// first-seen order, each followed by the subgroups that have at least one row.
func FairnessOptions(rows []results.FairnessRow) []FairnessOption {
	type pair struct{ metric, subgroup string }
	present := make(map[pair]bool, len(rows))
	var metrics []string
	seen := make(map[string]bool)
	for _, row := range rows {
		present[pair{row.Metric, row.Subgroup}] = true
		if !seen[row.Metric] {
			seen[row.Metric] = true
			metrics = append(metrics, row.Metric)
		}
	}

	var options []FairnessOption
	for _, metric := range metrics {
		for _, subgroup := range results.Subgroups() {
			if !present[pair{metric, subgroup}] {
				continue
			}
			options = append(options, FairnessOption{
				Label:    OptionLabel(metric, subgroup),
				Metric:   metric,
				Subgroup: subgroup,
			})
		}
	}
	return options
}

// Available builds the selector options from the compiled-in tables.
func Available() Options {
	return Options{
		Models:      results.Models(),
		Fairness:    FairnessOptions(results.Fairness()),
		PerfMetrics: results.PerformanceMetrics(),
	}
}

// FairnessLabels returns the fairness option labels in option order.
func (o Options) FairnessLabels() []string {
	labels := make([]string, len(o.Fairness))
	for i, opt := range o.Fairness {
		labels[i] = opt.Label
	}
	return labels
}

// Lookup resolves a fairness label back to its metric and subgroup.
func (o Options) Lookup(label string) (FairnessOption, bool) {
	for _, opt := range o.Fairness {
		if opt.Label == label {
			return opt, true
		}
	}
	return FairnessOption{}, false
}

// defaultFairnessMetrics are preselected for the Gender subgroup.
var defaultFairnessMetrics = []string{
	results.MetricSPD,
	results.MetricDPD,
	results.MetricEOD,
	results.MetricEqualizedOdds,
	results.MetricMACE,
}

// Default returns the initial selection: every model, every performance
// metric, and the Gender pair of each default fairness metric that has data.
func Default(o Options) Selection {
	sel := Selection{
		Models:         append([]string{}, o.Models...),
		FairnessLabels: []string{},
		PerfMetrics:    append([]string{}, o.PerfMetrics...),
	}
	for _, metric := range defaultFairnessMetrics {
		label := OptionLabel(metric, results.SubgroupGender)
		if _, ok := o.Lookup(label); ok {
			sel.FairnessLabels = append(sel.FairnessLabels, label)
		}
	}
	return sel
}

// Sanitize restricts each selector to known options and drops duplicates.
// The caller's order is kept and empty selectors stay empty.
func (o Options) Sanitize(sel Selection) Selection {
	return Selection{
		Models:         keepKnown(sel.Models, o.Models),
		FairnessLabels: keepKnown(sel.FairnessLabels, o.FairnessLabels()),
		PerfMetrics:    keepKnown(sel.PerfMetrics, o.PerfMetrics),
	}
}

// Unknown lists the selected values that are not options, per selector.
func (o Options) Unknown(sel Selection) []string {
	var unknown []string
	unknown = append(unknown, missing(sel.Models, o.Models)...)
	unknown = append(unknown, missing(sel.FairnessLabels, o.FairnessLabels())...)
	unknown = append(unknown, missing(sel.PerfMetrics, o.PerfMetrics)...)
	return unknown
}

// Contains reports whether value is in values.
func Contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func keepKnown(chosen, universe []string) []string {
	out := make([]string, 0, len(chosen))
	for _, v := range chosen {
		if !Contains(universe, v) || Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func missing(chosen, universe []string) []string {
	var out []string
	for _, v := range chosen {
		if !Contains(universe, v) {
			out = append(out, v)
		}
	}
	return out
}
