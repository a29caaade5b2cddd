// internal/selection/schema.go
package selection

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema returns the JSON schema for a selection body. Every array is
// optional; a missing selector falls back to its default.
func (o Options) Schema() map[string]any {
	list := func(enum []string) map[string]any {
		return map[string]any{
			"type":        "array",
			"uniqueItems": true,
			"items": map[string]any{
				"type": "string",
				"enum": enum,
			},
		}
	}
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"models":      list(o.Models),
			"fairness":    list(o.FairnessLabels()),
			"performance": list(o.PerfMetrics),
		},
	}
}

// DecodeJSON validates a selection body against the option schema and
// decodes it. Selectors absent from the body keep their default value.
func (o Options) DecodeJSON(data []byte) (Selection, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(o.Schema()), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Selection{}, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return Selection{}, fmt.Errorf("invalid selection: %s", strings.Join(errs, "; "))
	}

	var body struct {
		Models      *[]string `json:"models"`
		Fairness    *[]string `json:"fairness"`
		Performance *[]string `json:"performance"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return Selection{}, fmt.Errorf("decode selection: %w", err)
	}

	sel := Default(o)
	if body.Models != nil {
		sel.Models = *body.Models
	}
	if body.Fairness != nil {
		sel.FairnessLabels = *body.Fairness
	}
	if body.Performance != nil {
		sel.PerfMetrics = *body.Performance
	}
	return o.Sanitize(sel), nil
}
