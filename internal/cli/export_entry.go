// internal/cli/export_entry.go
package fraudlens

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/mwiater/fraudlens/internal/logging"
	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/util"
)

// exportFormats are the artifact kinds 'export' knows how to write.
var exportFormats = []string{"html", "png", "xlsx", "json", "yaml"}

type artifact struct {
	name  string
	write func(io.Writer) error
}

// parseFormats validates a comma separated format list.
func parseFormats(raw []string) (map[string]bool, error) {
	set := make(map[string]bool)
	for _, f := range raw {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		known := false
		for _, k := range exportFormats {
			if f == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown export format %q (want %s)", f, strings.Join(exportFormats, ", "))
		}
		set[f] = true
	}
	if len(set) == 0 {
		return nil, errors.New("no export formats selected")
	}
	return set, nil
}

func artifacts(d report.Dashboard, formats map[string]bool, chartHeight int, assetsHost string) []artifact {
	var out []artifact
	if formats["html"] {
		out = append(out, artifact{"dashboard.html", func(w io.Writer) error {
			return report.RenderHTML(w, d, report.PageOptions{AssetsHost: assetsHost, FairnessHeight: chartHeight})
		}})
	}
	if formats["png"] {
		if d.Performance.HasChart() {
			out = append(out, artifact{"performance.png", func(w io.Writer) error {
				return report.WritePerformancePNG(w, d.Performance)
			}})
		}
		for _, p := range d.Fairness {
			if !p.HasChart() {
				continue
			}
			p := p
			out = append(out, artifact{"fairness-" + slug(p.Label) + ".png", func(w io.Writer) error {
				return report.WriteFairnessPNG(w, p, chartHeight)
			}})
		}
	}
	if formats["xlsx"] {
		out = append(out, artifact{"dashboard.xlsx", func(w io.Writer) error { return report.WriteWorkbook(w, d) }})
	}
	if formats["json"] {
		out = append(out, artifact{"dashboard.json", func(w io.Writer) error { return report.WriteJSON(w, d) }})
	}
	if formats["yaml"] {
		out = append(out, artifact{"dashboard.yaml", func(w io.Writer) error { return report.WriteYAML(w, d) }})
	}
	return out
}

// runExport writes every artifact into dir concurrently and returns the
// written paths in name order. The first failure cancels the rest.
func runExport(ctx context.Context, dir string, d report.Dashboard, formats map[string]bool, chartHeight int, assetsHost string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, a := range artifacts(d, formats, chartHeight, assetsHost) {
		a := a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := a.write(&buf); err != nil {
				return fmt.Errorf("render %s: %w", a.name, err)
			}
			path := filepath.Join(dir, a.name)
			if err := util.WriteFileAtomic(path, buf.Bytes()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logging.LogEvent("exported %s (%d bytes)", path, buf.Len())
			mu.Lock()
			written = append(written, path)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(written)
	return written, nil
}

// slug turns a fairness label into a file-name fragment.
func slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
