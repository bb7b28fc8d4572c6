package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Dashboard metadata
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)
	mux.HandleFunc("/api/tools", s.app.ToolsHandler.ServeHTTP)

	// Mission API proxy routes
	mux.HandleFunc("/api/ingest", s.app.EventsHandler.ServeIngest)
	mux.HandleFunc("/api/events", s.app.EventsHandler.ServeList)
	mux.HandleFunc("/api/events/", s.handleEventSubpath)
	mux.HandleFunc("/api/routes/alt", s.app.RoutingHandler.ServeAltRoute)
	mux.HandleFunc("/api/alerts/geofence", s.app.AlertsHandler.ServeGeofence)
	mux.HandleFunc("/api/simulate/replay", s.app.AlertsHandler.ServeReplay)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleEventSubpath routes /api/events/{id}/explain; everything else under
// /api/events/ is a 404.
func (s *Server) handleEventSubpath(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/explain") {
		s.app.EventsHandler.ServeExplain(w, r)
		return
	}
	s.handleNotFound(w, r)
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
