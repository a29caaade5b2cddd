// internal/server/handlers.go
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mwiater/fraudlens/internal/logging"
	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/selection"
)

const (
	maxBodyBytes = 64 << 10
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ErrResp is the JSON body of a failed API request.
type ErrResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// OptionsResp lists what each selector offers and what it starts with.
type OptionsResp struct {
	Options  selection.Options   `json:"options"`
	Defaults selection.Selection `json:"defaults"`
}

func (s *Server) dashboard(r *http.Request, sel selection.Selection, source string) report.Dashboard {
	logging.LogSelection(fmt.Sprintf("%s %s", source, RequestIDFrom(r.Context())), sel)
	return report.Build(s.options, sel)
}

func (s *Server) fromQuery(r *http.Request) selection.Selection {
	return selection.FromQuery(r.URL.Query(), s.options)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	d := s.dashboard(r, s.fromQuery(r), "page")

	var buf bytes.Buffer
	err := report.RenderHTML(&buf, d, report.PageOptions{
		AssetsHost:     s.cfg.AssetsHost,
		FairnessHeight: s.cfg.ChartHeight,
		Action:         "/",
		ExportLinks:    true,
	})
	if err != nil {
		logging.LogEvent("render page: %v", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResp{
		Options:  s.options,
		Defaults: selection.Default(s.options),
	})
}

func (s *Server) handleDashboardQuery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dashboard(r, s.fromQuery(r), "api"))
}

func (s *Server) handleDashboardBody(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrResp{OK: false, Error: "read body: " + err.Error()})
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	if !json.Valid(data) {
		writeJSON(w, http.StatusBadRequest, ErrResp{OK: false, Error: "invalid JSON body"})
		return
	}
	sel, err := s.options.DecodeJSON(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrResp{OK: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.dashboard(r, sel, "api"))
}

func (s *Server) handlePerformancePNG(w http.ResponseWriter, r *http.Request) {
	d := s.dashboard(r, s.fromQuery(r), "png")
	s.writePNG(w, func(out io.Writer) error {
		return report.WritePerformancePNG(out, d.Performance)
	}, d.Performance.Placeholder)
}

func (s *Server) handleFairnessPNG(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if label == "" {
		http.Error(w, "missing label", http.StatusBadRequest)
		return
	}
	d := s.dashboard(r, s.fromQuery(r), "png")
	panel, ok := d.FindPanel(label)
	if !ok {
		http.Error(w, report.NoFairnessDataMessage(label), http.StatusNotFound)
		return
	}
	s.writePNG(w, func(out io.Writer) error {
		return report.WriteFairnessPNG(out, panel, s.cfg.ChartHeight)
	}, panel.Placeholder)
}

func (s *Server) writePNG(w http.ResponseWriter, render func(io.Writer) error, placeholder string) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if errors.Is(err, report.ErrNoChart) {
			http.Error(w, placeholder, http.StatusNotFound)
			return
		}
		logging.LogEvent("render png: %v", err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	d := s.dashboard(r, s.fromQuery(r), "xlsx")

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, d); err != nil {
		logging.LogEvent("render workbook: %v", err)
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="fraudlens.xlsx"`)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
