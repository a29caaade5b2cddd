// internal/report/text.go
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/fraudlens/internal/util"
)

const (
	defaultTextWidth = 80
	minBarWidth      = 10
	barGlyph         = "█"
	// minPanelWidth is the narrowest column that still fits the longest model
	// name, a four-decimal label and a minimum bar.
	minPanelWidth = 44
	panelGap      = 2
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	headingStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	negativeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	noteStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	barColors        = []lipgloss.Color{"63", "203", "42", "135", "215", "45"}
)

// RenderText draws the dashboard as horizontal bar charts for a terminal of
// the given width.
func RenderText(d Dashboard, width int) string {
	if width <= 0 {
		width = defaultTextWidth
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")

	b.WriteString(PerformanceText(d.Performance, width))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Fairness"))
	b.WriteString("\n")
	if d.FairnessPlaceholder != "" {
		b.WriteString(placeholderStyle.Render(d.FairnessPlaceholder))
		b.WriteString("\n")
	}
	b.WriteString(fairnessGridText(d.FairnessGrid(), width))

	b.WriteString("\n")
	for _, n := range d.Notes {
		for _, line := range util.Wrap("* "+n, width, "  ") {
			b.WriteString(noteStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// fairnessGridText lays the panels out side by side, FairnessColumns per row,
// when each column gets at least minPanelWidth. Narrower terminals stack them.
func fairnessGridText(grid [][]FairnessPanel, width int) string {
	var b strings.Builder
	colWidth := (width - panelGap*(FairnessColumns-1)) / FairnessColumns
	for _, row := range grid {
		b.WriteString("\n")
		if colWidth < minPanelWidth {
			for i, p := range row {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(FairnessText(p, width))
			}
			continue
		}

		cell := lipgloss.NewStyle().Width(colWidth)
		gap := strings.Repeat(" ", panelGap)
		blocks := make([]string, 0, 2*len(row))
		for i, p := range row {
			if i > 0 {
				blocks = append(blocks, gap)
			}
			blocks = append(blocks, cell.Render(strings.TrimRight(FairnessText(p, colWidth), "\n")))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		b.WriteString("\n")
	}
	return b.String()
}

// PerformanceText draws the performance chart, one block per model.
func PerformanceText(c PerformanceChart, width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Performance"))
	b.WriteString("\n")
	if !c.HasChart() {
		b.WriteString(placeholderStyle.Render(c.Placeholder))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := longest(c.Metrics) + 2
	scale := c.YMax
	for _, model := range c.Models {
		b.WriteString(model)
		b.WriteString("\n")
		for i, metric := range c.Metrics {
			for _, bar := range c.Bars {
				if bar.Model != model || bar.Metric != metric {
					continue
				}
				style := lipgloss.NewStyle().Foreground(barColors[i%len(barColors)])
				b.WriteString(barLine(metric, labelWidth, bar.Score, scale, bar.Label, width, style))
			}
		}
	}
	return b.String()
}

// FairnessText draws one fairness panel, or its placeholder.
func FairnessText(p FairnessPanel, width int) string {
	var b strings.Builder
	if !p.HasChart() {
		b.WriteString(placeholderStyle.Render(p.Placeholder))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(p.Title)
	b.WriteString("\n")

	models := make([]string, len(p.Bars))
	scale := 0.0
	for i, bar := range p.Bars {
		models[i] = bar.Model
		scale = math.Max(scale, math.Abs(bar.Value))
	}
	labelWidth := longest(models) + 2
	for _, bar := range p.Bars {
		style := lipgloss.NewStyle().Foreground(barColors[0])
		if bar.Value < 0 {
			style = negativeStyle
		}
		b.WriteString(barLine(bar.Model, labelWidth, bar.Value, scale, bar.Label, width, style))
	}
	return b.String()
}

func barLine(name string, labelWidth int, value, scale float64, label string, width int, style lipgloss.Style) string {
	room := width - labelWidth - len(label) - 4
	if room < minBarWidth {
		room = minBarWidth
	}
	n := 0
	if scale > 0 {
		n = int(math.Round(math.Abs(value) / scale * float64(room)))
	}
	if n > room {
		n = room
	}
	if n == 0 && value != 0 {
		n = 1
	}
	bar := style.Render(strings.Repeat(barGlyph, n))
	return fmt.Sprintf("  %-*s%s %s\n", labelWidth, name, bar, label)
}

func longest(values []string) int {
	n := 0
	for _, v := range values {
		if w := lipgloss.Width(v); w > n {
			n = w
		}
	}
	return n
}
