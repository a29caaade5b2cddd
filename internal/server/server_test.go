package server

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/selection"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(Config{ChartHeight: 300}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestIndexDefaults(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), report.PageTitle)
	assert.Equal(t, 6, strings.Count(string(body), `class="chart-card"`))
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestIndexEmptySelection(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/?applied=1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), report.NoPerfMetricsMessage)
	assert.Contains(t, string(body), report.NoFairnessMetricsMessage)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
}

func TestOptions(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/options")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got OptionsResp
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got.Options.Models, 3)
	assert.Len(t, got.Options.Fairness, 10)
	assert.Len(t, got.Options.PerfMetrics, 4)
	assert.Len(t, got.Defaults.FairnessLabels, 5)
}

func TestDashboardQuery(t *testing.T) {
	ts := newTestServer(t)
	q := selection.Selection{
		Models:         []string{"XGBoost", "Random Forest"},
		FairnessLabels: []string{"SPD — Gender"},
		PerfMetrics:    []string{"F1"},
	}.Query()
	resp, body := get(t, ts, "/api/dashboard?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d report.Dashboard
	require.NoError(t, json.Unmarshal(body, &d))
	require.Len(t, d.Fairness, 1)
	assert.Equal(t, "Random Forest", d.Fairness[0].Bars[0].Model)
	assert.Equal(t, "-0.0019", d.Fairness[0].Bars[0].Label)
	assert.Len(t, d.Performance.Bars, 2)
}

func TestDashboardBody(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/dashboard", "application/json",
		strings.NewReader(`{"models": [], "fairness": ["MACE (overall) — Age"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d report.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, report.NoPerformanceDataMessage, d.Performance.Placeholder)
	require.Len(t, d.Fairness, 1)
	assert.Equal(t, "No data for MACE (overall) — Age.", d.Fairness[0].Placeholder)
}

func TestDashboardBodyRejected(t *testing.T) {
	ts := newTestServer(t)
	for name, body := range map[string]string{
		"malformed":     `{"models": [`,
		"unknown value": `{"models": ["Naive Bayes"]}`,
		"unknown key":   `{"colour": "red"}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/dashboard", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var e ErrResp
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.False(t, e.OK)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestPerformancePNG(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/charts/performance.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))

	resp, body = get(t, ts, "/charts/performance.png?applied=1&models=XGBoost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), report.NoPerfMetricsMessage)
}

func TestFairnessPNG(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/charts/fairness.png?label="+url.QueryEscape("SPD — Gender"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))

	resp, _ = get(t, ts, "/charts/fairness.png")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = get(t, ts, "/charts/fairness.png?label="+url.QueryEscape("SPD — Age"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "No data for SPD — Age.")
}

func TestWorkbook(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxMIME, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "fraudlens.xlsx")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := New(Config{Addr: addr, ReadTimeout: time.Second, WriteTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

var selectedOption = regexp.MustCompile(`<option value="([^"]+)" selected>`)

// selectedValues returns the selected options of one <select>, in document
// order, which is the order a browser submits them in.
func selectedValues(t *testing.T, body, id string) []string {
	t.Helper()
	start := strings.Index(body, `id="`+id+`"`)
	require.GreaterOrEqual(t, start, 0, "select %q not found", id)
	end := strings.Index(body[start:], "</select>")
	require.Greater(t, end, 0)

	var values []string
	for _, m := range selectedOption.FindAllStringSubmatch(body[start:start+end], -1) {
		values = append(values, html.UnescapeString(m[1]))
	}
	return values
}

func TestFairnessOrderSurvivesResubmit(t *testing.T) {
	ts := newTestServer(t)

	first := url.Values{}
	first.Set(selection.ParamApplied, "1")
	first[selection.ParamModels] = []string{"Random Forest", "XGBoost"}
	first[selection.ParamFairness] = []string{"EOD — Gender", "SPD — Gender"}
	first[selection.ParamMetrics] = []string{"F1"}
	resp, body := get(t, ts, "/?"+first.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"EOD — Gender", "SPD — Gender"}, selectedValues(t, string(body), "fairness"))

	// The browser resubmits every selector when only the models change.
	next := url.Values{}
	next.Set(selection.ParamApplied, "1")
	next[selection.ParamModels] = []string{"XGBoost"}
	next[selection.ParamFairness] = selectedValues(t, string(body), "fairness")
	next[selection.ParamMetrics] = selectedValues(t, string(body), "metrics")
	resp, body = get(t, ts, "/?"+next.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page := string(body)
	eod := strings.Index(page, `data-title="EOD (Gender)"`)
	spd := strings.Index(page, `data-title="SPD (Gender)"`)
	require.GreaterOrEqual(t, eod, 0)
	require.GreaterOrEqual(t, spd, 0)
	assert.Less(t, eod, spd, "fairness panels should keep the order they were picked in")
}
