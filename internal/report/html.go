// internal/report/html.go
package report

import (
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/mwiater/fraudlens/internal/selection"
)

// PageOptions controls the parts of the HTML page that depend on where it is served.
type PageOptions struct {
	// AssetsHost is the base URL for echarts.min.js.
	AssetsHost string
	// FairnessHeight is the fairness chart height in pixels.
	FairnessHeight int
	// Action is the form target. An empty action renders a static page
	// without the selector form.
	Action string
	// ExportLinks adds PNG and XLSX download links next to the charts.
	ExportLinks bool
}

type optionView struct {
	Value    string
	Selected bool
}

type panelView struct {
	Label       string
	Title       string
	Placeholder string
	Chart       template.HTML
	PNGURL      string
}

type pageData struct {
	Title               string
	AssetsHost          string
	Action              string
	ExportLinks         bool
	XLSXURL             string
	ModelOptions        []optionView
	FairnessOptions     []optionView
	MetricOptions       []optionView
	PerformancePanel    panelView
	FairnessPlaceholder string
	FairnessRows        [][]panelView
	Notes               template.HTML
}

// RenderHTML writes the dashboard as a single HTML page: the three
// selectors, the performance chart, the fairness grid and the footnote.
func RenderHTML(w io.Writer, d Dashboard, po PageOptions) error {
	if po.AssetsHost == "" {
		po.AssetsHost = DefaultAssetsHost
	}
	if po.FairnessHeight <= 0 {
		po.FairnessHeight = FairnessChartHeight
	}
	query := d.Selection.Query()

	data := pageData{
		Title:               d.Title,
		AssetsHost:          po.AssetsHost,
		Action:              po.Action,
		ExportLinks:         po.ExportLinks,
		XLSXURL:             "/export.xlsx?" + query.Encode(),
		ModelOptions:        optionViews(d.Options.Models, d.Selection.Models),
		FairnessOptions:     orderedOptionViews(d.Options.FairnessLabels(), d.Selection.FairnessLabels),
		MetricOptions:       optionViews(d.Options.PerfMetrics, d.Selection.PerfMetrics),
		FairnessPlaceholder: d.FairnessPlaceholder,
		Notes:               NotesHTML(d.Notes),
	}

	data.PerformancePanel = panelView{Title: "Performance", PNGURL: "/charts/performance.png?" + query.Encode()}
	if d.Performance.HasChart() {
		data.PerformancePanel.Chart = chartSnippet(performanceBar(d.Performance, po.AssetsHost))
	} else {
		data.PerformancePanel.Placeholder = d.Performance.Placeholder
	}

	for r, row := range d.FairnessGrid() {
		views := make([]panelView, 0, len(row))
		for c, panel := range row {
			view := panelView{Label: panel.Label, Title: panel.Title}
			if panel.HasChart() {
				id := fmt.Sprintf("fairness-%d", r*FairnessColumns+c)
				view.Chart = chartSnippet(fairnessBar(panel, id, po.FairnessHeight, po.AssetsHost))
				view.PNGURL = fairnessPNGURL(query, panel.Label)
			} else {
				view.Placeholder = panel.Placeholder
			}
			views = append(views, view)
		}
		data.FairnessRows = append(data.FairnessRows, views)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}

func fairnessPNGURL(query url.Values, label string) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("label", label)
	return "/charts/fairness.png?" + q.Encode()
}

func optionViews(universe, selected []string) []optionView {
	views := make([]optionView, len(universe))
	for i, v := range universe {
		views[i] = optionView{Value: v, Selected: selection.Contains(selected, v)}
	}
	return views
}

// orderedOptionViews lists the selected options first, in selection order,
// then the rest in universe order. Browsers submit a multiple select in
// document order, so this keeps the chart order across resubmits and appends
// newly picked options at the end.
func orderedOptionViews(universe, selected []string) []optionView {
	views := make([]optionView, 0, len(universe))
	for _, v := range selected {
		if selection.Contains(universe, v) && !containsView(views, v) {
			views = append(views, optionView{Value: v, Selected: true})
		}
	}
	for _, v := range universe {
		if !containsView(views, v) {
			views = append(views, optionView{Value: v})
		}
	}
	return views
}

func containsView(views []optionView, value string) bool {
	for _, v := range views {
		if v.Value == value {
			return true
		}
	}
	return false
}

var pageTemplate = template.Must(template.New("dashboard").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <script src="{{ .AssetsHost }}echarts.min.js"></script>
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body {
      background-color: var(--light);
      color: var(--text);
    }
    .chart-card {
      background: var(--background);
      border-radius: 16px;
      padding: 1.25rem;
      box-shadow: 0 1px 3px rgba(15, 23, 42, 0.1);
      border: 1px solid var(--border);
      height: 100%;
    }
    .chart-card .container { max-width: none; padding: 0; }
    .filter-label {
      font-weight: 600;
      color: var(--text);
    }
    .selector select { min-height: 9rem; }
    .notes { color: var(--secondary); font-size: 0.9rem; }
    .notes ul { padding-left: 1.2rem; }
  </style>
</head>
<body>
  <main class="container-fluid py-4 px-4">
    <h1 class="h3 mb-4">📊 {{ .Title }}</h1>

    {{ if .Action }}
    <form id="selectors" class="row g-3" method="get" action="{{ .Action }}">
      <input type="hidden" name="applied" value="1">
      <div class="col-md-4 selector">
        <label class="filter-label form-label" for="models">Select model(s)</label>
        <select class="form-select" id="models" name="models" multiple onchange="this.form.submit()">
          {{ range .ModelOptions }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Value }}</option>
          {{ end }}
        </select>
      </div>
      <div class="col-md-4 selector">
        <label class="filter-label form-label" for="fairness">Select fairness metric(s)</label>
        <select class="form-select" id="fairness" name="fairness" multiple onchange="this.form.submit()">
          {{ range .FairnessOptions }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Value }}</option>
          {{ end }}
        </select>
      </div>
      <div class="col-md-4 selector">
        <label class="filter-label form-label" for="metrics">Select performance metrics</label>
        <select class="form-select" id="metrics" name="metrics" multiple onchange="this.form.submit()">
          {{ range .MetricOptions }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Value }}</option>
          {{ end }}
        </select>
      </div>
      <noscript><div class="col-12"><button class="btn btn-primary" type="submit">Apply</button></div></noscript>
    </form>
    {{ end }}

    <hr class="my-4">

    <section id="performance-section">
      <div class="d-flex align-items-center justify-content-between">
        <h2 class="h5">Performance</h2>
        {{ if and .ExportLinks .PerformancePanel.Chart }}<a class="small" href="{{ .PerformancePanel.PNGURL }}">PNG</a>{{ end }}
      </div>
      {{ if .PerformancePanel.Chart }}
      <div class="chart-card">{{ .PerformancePanel.Chart }}</div>
      {{ else }}
      <div class="alert alert-info" role="status">{{ .PerformancePanel.Placeholder }}</div>
      {{ end }}
    </section>

    <section id="fairness-section" class="mt-4">
      <div class="d-flex align-items-center justify-content-between">
        <h2 class="h5">Fairness</h2>
        {{ if .ExportLinks }}<a class="small" href="{{ .XLSXURL }}">XLSX</a>{{ end }}
      </div>
      {{ if .FairnessPlaceholder }}
      <div class="alert alert-info" role="status">{{ .FairnessPlaceholder }}</div>
      {{ else }}
      {{ range .FairnessRows }}
      <div class="row g-3 mb-3">
        {{ range . }}
        <div class="col-md-6">
          {{ if .Chart }}
          <div class="chart-card" data-title="{{ .Title }}">
            {{ .Chart }}
            {{ if $.ExportLinks }}<a class="small" href="{{ .PNGURL }}">PNG</a>{{ end }}
          </div>
          {{ else }}
          <div class="alert alert-info" role="status">{{ .Placeholder }}</div>
          {{ end }}
        </div>
        {{ end }}
      </div>
      {{ end }}
      {{ end }}
    </section>

    <footer class="notes mt-4">{{ .Notes }}</footer>
  </main>
</body>
</html>
`
