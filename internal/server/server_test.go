package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atlasops/atlas-console/internal/app"
	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/config"
)

// newTestServer builds a full server wired against a mission API stub.
func newTestServer(t *testing.T, apiURL string) *Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.API.URL = apiURL

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("Failed to initialize app: %v", err)
	}
	return New(application)
}

// stubMissionAPI answers every request with the given JSON body.
func stubMissionAPI(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Expected ok status, got %s", rec.Body.String())
	}
}

func TestRoutes_ToolsCatalog(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Tools []json.RawMessage `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	if len(body.Tools) != 6 {
		t.Errorf("Expected 6 tools, got %d", len(body.Tools))
	}
}

func TestRoutes_ExplainSubpath(t *testing.T) {
	api := stubMissionAPI(t, `{"eventId":"evt-1","rationale":"keyword match"}`)
	s := newTestServer(t, api.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/events/evt-1/explain", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestRoutes_UnknownEventSubpath404(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/events/evt-1/history", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found") {
		t.Errorf("Expected JSON 404 body, got %s", rec.Body.String())
	}
}

func TestRoutes_UnknownAPIRoute404(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %s", ct)
	}
}

func TestRoutes_IngestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/ingest", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestMiddleware_CorrelationIDGenerated(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("Expected generated X-Correlation-ID header")
	}
}

func TestMiddleware_CorrelationIDFromRequestID(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Correlation-ID"); got != "req-abc-123" {
		t.Errorf("Expected X-Request-ID echoed as correlation ID, got %q", got)
	}
}

func TestMiddleware_SecurityHeaders(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("Expected nosniff, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("Expected DENY, got %q", got)
	}
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	req := httptest.NewRequest(http.MethodOptions, "/api/ingest", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS allow-origin header")
	}
}

func TestMiddleware_MaxBodySize(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	big := `{"text":"` + strings.Repeat("x", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ingest", strings.NewReader(big))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversized body, got %d", rec.Code)
	}
}

func TestMiddleware_RecoveryReturns500(t *testing.T) {
	s := newTestServer(t, "http://localhost:1")

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := s.withMiddleware(panicky)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", rec.Code)
	}
}
