// internal/util/util.go
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// WriteFileAtomic writes data to a temporary file beside path and renames it
// into place, so readers never see a half-written artifact.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// Truncate shortens text to at most width runes, ending in an ellipsis when
// anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	r := []rune(text)
	return string(r[:width-1]) + "…"
}

// Wrap breaks text into lines of at most width runes on word boundaries.
// Continuation lines start with indent. Words longer than a line are split.
func Wrap(text string, width int, indent string) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	var lines []string
	line, prefix := "", ""
	for _, w := range words {
		for {
			candidate := prefix + w
			if line != "" {
				candidate = line + " " + w
			}
			if utf8.RuneCountInString(candidate) <= width {
				line = candidate
				break
			}
			if line != "" {
				lines = append(lines, line)
				line, prefix = "", indent
				continue
			}
			room := width - utf8.RuneCountInString(prefix)
			if room < 1 {
				room = 1
			}
			r := []rune(w)
			lines = append(lines, prefix+string(r[:room]))
			w, prefix = string(r[room:]), indent
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
