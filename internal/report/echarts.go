// internal/report/echarts.go
package report

import (
	"fmt"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultAssetsHost serves echarts.min.js when the config does not override it.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// metricPalette colours the performance series, one colour per metric.
var metricPalette = []string{"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A", "#19D3F3"}

const fairnessColor = "#636EFA"

// fixedLabel formats bar values in the browser with a fixed precision.
func fixedLabel(decimals int) string {
	return fmt.Sprintf("function (params) { return Number(params.value).toFixed(%d); }", decimals)
}

// performanceBar builds the grouped performance chart: models on the x axis,
// one series per metric, score axis fixed to [PerformanceYMin, PerformanceYMax].
func performanceBar(c PerformanceChart, assetsHost string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    "performance",
			Width:      "100%",
			Height:     fmt.Sprintf("%dpx", PerformanceChartHeight),
			AssetsHost: assetsHost,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "0",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Model",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Score",
			Type: "value",
			Min:  c.YMin,
			Max:  c.YMax,
		}),
		charts.WithGridOpts(opts.Grid{
			Top:    "60",
			Bottom: "40",
		}),
	)

	bar.SetXAxis(c.Models)
	for i, s := range c.Series() {
		data := make([]opts.BarData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.BarData{Name: c.Models[j], Value: v}
		}
		bar.AddSeries(s.Metric, data,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: string(opts.FuncOpts(fixedLabel(ScoreDecimals))),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: metricPalette[i%len(metricPalette)],
			}),
		)
	}
	return bar
}

// fairnessBar builds one fairness chart: one bar per model, in panel order.
func fairnessBar(p FairnessPanel, id string, height int, assetsHost string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    id,
			Width:      "100%",
			Height:     fmt.Sprintf("%dpx", height),
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: p.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Model",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Value",
			Type: "value",
		}),
		charts.WithGridOpts(opts.Grid{
			Top:    "70",
			Bottom: "40",
		}),
	)

	models := make([]string, len(p.Bars))
	data := make([]opts.BarData, len(p.Bars))
	for i, b := range p.Bars {
		models[i] = b.Model
		data[i] = opts.BarData{Name: b.Model, Value: b.Value}
	}
	bar.SetXAxis(models)
	bar.AddSeries("Value", data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: string(opts.FuncOpts(fixedLabel(p.Decimals))),
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: fairnessColor,
		}),
	)
	return bar
}

// chartSnippet renders a chart as an embeddable element plus its init script.
func chartSnippet(bar *charts.Bar) template.HTML {
	snippet := bar.RenderSnippet()
	return template.HTML(snippet.Element + snippet.Script)
}
