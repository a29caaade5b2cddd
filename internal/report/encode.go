// internal/report/encode.go
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteJSON writes the dashboard as indented JSON.
func WriteJSON(w io.Writer, d Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dashboard json: %w", err)
	}
	return nil
}

// WriteYAML writes the dashboard as YAML.
func WriteYAML(w io.Writer, d Dashboard) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dashboard yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush dashboard yaml: %w", err)
	}
	return nil
}
