// internal/selection/query.go
package selection

import (
	"net/url"
	"strings"
)

// Query parameter names used by the dashboard form.
const (
	ParamModels   = "models"
	ParamFairness = "fairness"
	ParamMetrics  = "metrics"
	// ParamApplied marks a submitted form. Without it the defaults apply,
	// which lets an unchecked selector mean "nothing selected".
	ParamApplied = "applied"
)

// FromQuery reads a selection from query parameters. Requests that were not
// submitted from the form get the default selection.
func FromQuery(values url.Values, o Options) Selection {
	if values.Get(ParamApplied) == "" {
		return Default(o)
	}
	return o.Sanitize(Selection{
		Models:         nonEmpty(values[ParamModels]),
		FairnessLabels: nonEmpty(values[ParamFairness]),
		PerfMetrics:    nonEmpty(values[ParamMetrics]),
	})
}

// Query encodes a selection so FromQuery reproduces it exactly.
func (s Selection) Query() url.Values {
	values := url.Values{}
	values.Set(ParamApplied, "1")
	for _, m := range s.Models {
		values.Add(ParamModels, m)
	}
	for _, l := range s.FairnessLabels {
		values.Add(ParamFairness, l)
	}
	for _, m := range s.PerfMetrics {
		values.Add(ParamMetrics, m)
	}
	return values
}

// ParseList splits a comma separated flag value, trimming blanks.
func ParseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
