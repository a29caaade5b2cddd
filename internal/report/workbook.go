// internal/report/workbook.go
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mwiater/fraudlens/internal/results"
)

// Workbook sheet names, in tab order.
const (
	SheetPerformance         = "Performance"
	SheetFairness            = "Fairness"
	SheetSelectedPerformance = "Selected Performance"
	SheetSelectedFairness    = "Selected Fairness"
	SheetNotes               = "Notes"
)

// WriteWorkbook writes the full result tables and the current selection's
// chart data as an XLSX workbook.
func WriteWorkbook(w io.Writer, d Dashboard) error {
	f, err := buildWorkbook(results.Performance(), results.Fairness(), d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(perf []results.PerformanceRow, fair []results.FairnessRow, d Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetPerformance); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetPerformance, performanceRows(perf)},
		{SheetFairness, fairnessRows(fair)},
		{SheetSelectedPerformance, selectedPerformanceRows(d.Performance)},
		{SheetSelectedFairness, selectedFairnessRows(d)},
		{SheetNotes, notesRows(d.Notes)},
	}
	for _, s := range sheets {
		if s.name != SheetPerformance {
			if _, err := f.NewSheet(s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("add sheet %q: %w", s.name, err)
			}
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func performanceRows(perf []results.PerformanceRow) [][]interface{} {
	rows := [][]interface{}{{"Model", results.MetricPrecision, results.MetricRecall, results.MetricF1, results.MetricROCAUC}}
	for _, p := range perf {
		rows = append(rows, []interface{}{p.Model, p.Precision, p.Recall, p.F1, p.ROCAUC})
	}
	return rows
}

func fairnessRows(fair []results.FairnessRow) [][]interface{} {
	rows := [][]interface{}{{"Metric", "Subgroup", "Model", "Value"}}
	for _, r := range fair {
		rows = append(rows, []interface{}{r.Metric, r.Subgroup, r.Model, r.Value})
	}
	return rows
}

func selectedPerformanceRows(c PerformanceChart) [][]interface{} {
	if !c.HasChart() {
		return [][]interface{}{{c.Placeholder}}
	}
	rows := [][]interface{}{{"Model", "Metric", "Score", "Label"}}
	for _, b := range c.Bars {
		rows = append(rows, []interface{}{b.Model, b.Metric, b.Score, b.Label})
	}
	return rows
}

func selectedFairnessRows(d Dashboard) [][]interface{} {
	if d.FairnessPlaceholder != "" {
		return [][]interface{}{{d.FairnessPlaceholder}}
	}
	rows := [][]interface{}{{"Chart", "Model", "Value", "Label"}}
	for _, p := range d.Fairness {
		if !p.HasChart() {
			rows = append(rows, []interface{}{p.Label, p.Placeholder})
			continue
		}
		for _, b := range p.Bars {
			rows = append(rows, []interface{}{p.Title, b.Model, b.Value, b.Label})
		}
	}
	return rows
}

func notesRows(notes []string) [][]interface{} {
	rows := make([][]interface{}, len(notes))
	for i, n := range notes {
		rows[i] = []interface{}{n}
	}
	return rows
}
