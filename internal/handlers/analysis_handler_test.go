package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"babytrack/internal/daterange"
	"babytrack/internal/service"
)

func analysisRouter(analysis *mockAnalysis) *testClient {
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, Analysis: analysis}
	return &testClient{newTestRouter(s)}
}

func TestAnalysisHandler_QueryMapping(t *testing.T) {
	analysis := &mockAnalysis{result: service.AnalysisResult{
		DataType: daterange.DataFeed,
		Mode:     daterange.ModeMonth,
		Range:    daterange.Range{Start: "2025-06-01", End: "2025-06-30"},
	}}
	r := analysisRouter(analysis)

	w := r.do(http.MethodGet, "/api/v1/analysis/feed?mode=month&start=2025-06-01&end=2025-06-30&end_anchor=2025-06-30", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	q := analysis.lastQuery
	if q.DataType != daterange.DataFeed || q.Mode != daterange.ModeMonth {
		t.Fatalf("type/mode not mapped: %+v", q)
	}
	if q.Start != "2025-06-01" || q.End != "2025-06-30" || q.EndAnchor != "2025-06-30" {
		t.Fatalf("window params not mapped: %+v", q)
	}
	if analysis.lastUser != 7 {
		t.Fatalf("user id not mapped, got %d", analysis.lastUser)
	}

	var out service.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Range.Start != "2025-06-01" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestAnalysisHandler_UnknownTypeIs400(t *testing.T) {
	analysis := &mockAnalysis{err: errors.New("unknown data type: must be feed, stool, or growth")}
	r := analysisRouter(analysis)

	w := r.do(http.MethodGet, "/api/v1/analysis/sleep", "", "tok")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestAnalysisHandler_ServiceFailureIs500(t *testing.T) {
	analysis := &mockAnalysis{err: errors.New("db down")}
	r := analysisRouter(analysis)

	w := r.do(http.MethodGet, "/api/v1/analysis/feed", "", "tok")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for service failure on valid params, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestAnalysisChartHandler_RendersHTML(t *testing.T) {
	analysis := &mockAnalysis{result: service.AnalysisResult{
		DataType: daterange.DataFeed,
		Mode:     daterange.ModeWeek,
		Range:    daterange.Range{Start: "2025-07-01", End: "2025-07-07"},
		Series: []service.SeriesPoint{
			{Date: "2025-07-01", Count: 5, Value: 110},
			{Date: "2025-07-02", Count: 6, Value: 115},
		},
	}}
	r := analysisRouter(analysis)

	w := r.do(http.MethodGet, "/api/v1/analysis/feed/chart", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected HTML content type, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "echarts") {
		t.Fatalf("chart page should embed echarts, got %d bytes", len(body))
	}
	if !strings.Contains(body, "2025-07-01") {
		t.Fatalf("chart should include the series dates")
	}
}
