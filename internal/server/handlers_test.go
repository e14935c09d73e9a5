package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testHandlers() *handlersImpl {
	return newHandlers(zap.NewNop().Sugar())
}

const analyzeBody = `{
	"name": "test-loop",
	"segments": [
		{"diameter_in": 4, "length_ft": 250, "material": "pvc", "elevation_change_ft": 30,
		 "fittings": [{"type": "elbow-90"}]},
		{"diameter_in": 4, "length_ft": 150, "material": "pvc"}
	],
	"pump": {
		"name": "test-pump",
		"points": [
			{"flow_gpm": 0, "head_ft": 120, "npshr_ft": 5},
			{"flow_gpm": 100, "head_ft": 95, "npshr_ft": 8},
			{"flow_gpm": 200, "head_ft": 50, "npshr_ft": 15}
		]
	},
	"suction": {"atmospheric_psia": 14.7, "vapor_pressure_psia": 0.36,
	            "static_suction_head_ft": 4, "suction_losses_ft": 1.5}
}`

func TestAnalyzeHandler(t *testing.T) {
	h := testHandlers()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(analyzeBody))
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("missing request_id")
	}
	if resp.Report == nil || !resp.Report.OperatingFound {
		t.Fatalf("expected an operating point, got %+v", resp.Report)
	}
	if resp.Report.NPSH == nil {
		t.Error("expected an NPSH study")
	}
}

func TestAnalyzeHandlerNoOperatingPoint(t *testing.T) {
	// A 600 ft lift exceeds the pump's shutoff head; that is still a 200
	// with operating_found=false, not an error.
	body := strings.Replace(analyzeBody, `"elevation_change_ft": 30`, `"elevation_change_ft": 600`, 1)

	h := testHandlers()
	rec := httptest.NewRecorder()
	h.analyze(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Report.OperatingFound {
		t.Error("expected operating_found=false against a 600 ft lift")
	}
}

func TestAnalyzeHandlerInputErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"segments": [`},
		{"unknown material", strings.Replace(analyzeBody, `"material": "pvc"`, `"material": "mithril"`, 1)},
		{"bad geometry", strings.Replace(analyzeBody, `"diameter_in": 4`, `"diameter_in": 0`, 1)},
		{
			"unsorted pump curve",
			strings.Replace(analyzeBody, `{"flow_gpm": 100, "head_ft": 95, "npshr_ft": 8},`,
				`{"flow_gpm": 300, "head_ft": 95, "npshr_ft": 8},`, 1),
		},
	}

	h := testHandlers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.analyze(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, expected 400; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestReferenceTableHandlers(t *testing.T) {
	h := testHandlers()

	rec := httptest.NewRecorder()
	h.materials(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("materials status = %d", rec.Code)
	}
	var materials []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &materials); err != nil {
		t.Fatalf("decoding materials: %v", err)
	}
	if len(materials) < 5 {
		t.Errorf("materials table has %d entries, expected the full reference set", len(materials))
	}

	rec = httptest.NewRecorder()
	h.fittings(rec, httptest.NewRequest(http.MethodGet, "/api/fittings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("fittings status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
}
