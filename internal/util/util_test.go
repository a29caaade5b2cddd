// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("new payload")); err != nil {
		t.Fatalf("WriteFileAtomic returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "new payload" {
		t.Fatalf("unexpected file contents: %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be renamed away, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := WriteFileAtomic(path, []byte("x")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "XGBoost", width: 10, want: "XGBoost"},
		{name: "ascii", in: "helloworld", width: 5, want: "hell…"},
		{name: "multibyte", in: "SPD — Gender", width: 6, want: "SPD —…"},
		{name: "zero width", in: "anything", width: 0, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Fatalf("Truncate(%q,%d)=%q want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		width  int
		indent string
		want   []string
	}{
		{name: "single line", in: "short note", width: 20, want: []string{"short note"}},
		{name: "word boundary", in: "alpha beta gamma", width: 11, indent: "  ", want: []string{"alpha beta", "  gamma"}},
		{name: "long word", in: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "empty", in: "   ", width: 10, want: []string{""}},
		{name: "no width", in: "a  b", width: 0, want: []string{"a  b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Wrap(tt.in, tt.width, tt.indent); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q,%d)=%q want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
