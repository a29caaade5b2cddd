// internal/tui/tui.go
// Package tui is the interactive terminal dashboard: three selector panes over
// a scrollable text rendering of the charts.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/fraudlens/internal/logging"
	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/selection"
	"github.com/mwiater/fraudlens/internal/util"
)

// pane identifies one of the three selectors.
type pane int

const (
	paneModels pane = iota
	paneFairness
	paneMetrics
	paneCount
)

var paneTitles = [paneCount]string{
	paneModels:   "Select model(s)",
	paneFairness: "Select fairness metric(s)",
	paneMetrics:  "Select performance metrics",
}

const (
	defaultWidth  = 100
	defaultHeight = 30
	// chromeHeight is the header plus the line breaks between sections.
	chromeHeight = 4
)

var (
	headerStyle      = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activePaneStyle  = paneStyle.BorderForeground(lipgloss.Color("205"))
	paneTitleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selectedMarker   = "[x]"
	unselectedMarker = "[ ]"
)

// model is the Bubble Tea model for the dashboard.
type model struct {
	options  selection.Options
	sel      selection.Selection
	active   pane
	cursor   [paneCount]int
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// initialModel starts from the default selection.
func initialModel(opts selection.Options) *model {
	m := &model{
		options:  opts,
		sel:      selection.Default(opts),
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % paneCount
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + paneCount - 1) % paneCount
		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.active] > 0 {
				m.cursor[m.active]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.active] < len(m.universe(m.active))-1 {
				m.cursor[m.active]++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.All):
			m.setChosen(m.active, append([]string{}, m.universe(m.active)...))
		case key.Matches(msg, m.keys.None):
			m.setChosen(m.active, []string{})
		case key.Matches(msg, m.keys.Reset):
			m.sel = selection.Default(m.options)
			m.selectionChanged()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// universe returns the options offered by a pane, in display order.
func (m *model) universe(p pane) []string {
	switch p {
	case paneModels:
		return m.options.Models
	case paneFairness:
		return m.options.FairnessLabels()
	default:
		return m.options.PerfMetrics
	}
}

func (m *model) chosen(p pane) []string {
	switch p {
	case paneModels:
		return m.sel.Models
	case paneFairness:
		return m.sel.FairnessLabels
	default:
		return m.sel.PerfMetrics
	}
}

func (m *model) setChosen(p pane, values []string) {
	switch p {
	case paneModels:
		m.sel.Models = values
	case paneFairness:
		m.sel.FairnessLabels = values
	default:
		m.sel.PerfMetrics = values
	}
	m.selectionChanged()
}

// toggle adds the option under the cursor to the end of the pane's selection,
// or removes it. Fairness charts follow selection order.
func (m *model) toggle() {
	universe := m.universe(m.active)
	if len(universe) == 0 {
		return
	}
	value := universe[m.cursor[m.active]]
	current := m.chosen(m.active)

	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	m.setChosen(m.active, next)
}

func (m *model) selectionChanged() {
	logging.LogSelection("tui", m.sel)
	m.refresh()
}

// refresh re-renders the charts for the current selection.
func (m *model) refresh() {
	d := report.Build(m.options, m.sel)
	m.viewport.SetContent(report.RenderText(d, m.viewport.Width))
}

func (m *model) layout() {
	m.viewport.Width = m.width
	h := m.height - chromeHeight - lipgloss.Height(m.panesView()) - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	m.viewport.Height = h
}

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(report.PageTitle))
	b.WriteString("\n")
	b.WriteString(m.panesView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *model) panesView() string {
	colWidth := m.width/int(paneCount) - 4
	if colWidth < 20 {
		colWidth = 20
	}
	views := make([]string, 0, paneCount)
	for p := pane(0); p < paneCount; p++ {
		style := paneStyle
		if p == m.active {
			style = activePaneStyle
		}
		views = append(views, style.Width(colWidth).Render(m.paneView(p, colWidth-2)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *model) paneView(p pane, width int) string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(util.Truncate(paneTitles[p], width)))
	chosen := m.chosen(p)
	for i, v := range m.universe(p) {
		marker := unselectedMarker
		if selection.Contains(chosen, v) {
			marker = selectedMarker
		}
		line := util.Truncate(fmt.Sprintf("%s %s", marker, v), width-2)
		if p == m.active && i == m.cursor[p] {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// Selection returns the selection the dashboard currently shows.
func (m *model) Selection() selection.Selection {
	return m.sel
}

// muteConsole keeps log lines off the alternate screen while the dashboard
// runs. They still reach the log file.
var muteConsole = logging.FileOnly

// Run starts the terminal dashboard and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts selection.Options) (selection.Selection, error) {
	restore := muteConsole()
	defer restore()

	m := initialModel(opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	if err != nil {
		return m.sel, fmt.Errorf("run terminal dashboard: %w", err)
	}
	if fm, ok := final.(*model); ok {
		return fm.sel, nil
	}
	return m.sel, nil
}
