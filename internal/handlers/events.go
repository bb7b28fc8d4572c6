package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/atlasops/atlas-console/internal/client"
	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/models"
)

// EventsHandler proxies the event operations (ingest, list, explain) to the
// mission API on behalf of the dashboard.
type EventsHandler struct {
	logger *common.Logger
	client *client.AtlasClient
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(logger *common.Logger, c *client.AtlasClient) *EventsHandler {
	return &EventsHandler{logger: logger, client: c}
}

// ServeIngest handles POST /api/ingest.
func (h *EventsHandler) ServeIngest(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Text) < 3 {
		WriteError(w, http.StatusBadRequest, "text must be at least 3 characters")
		return
	}
	if req.MediaURL != "" {
		u, err := url.ParseRequestURI(req.MediaURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			WriteError(w, http.StatusBadRequest, "mediaUrl must be a valid URL")
			return
		}
	}

	result, err := h.client.IngestEvent(r.Context(), req)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("ingest failed")
		WriteProxyError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ServeList handles GET /api/events.
func (h *EventsHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	result, err := h.client.ListEvents(r.Context())
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("list events failed")
		WriteProxyError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ServeExplain handles GET /api/events/{id}/explain.
func (h *EventsHandler) ServeExplain(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	eventID, ok := explainEventID(r.URL.Path)
	if !ok || eventID == "" {
		WriteError(w, http.StatusBadRequest, "eventId is required")
		return
	}

	result, err := h.client.ExplainEvent(r.Context(), eventID)
	if err != nil {
		h.logger.Warn().Str("event_id", eventID).Str("error", err.Error()).Msg("explain failed")
		WriteProxyError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// explainEventID extracts the event ID from /api/events/{id}/explain.
func explainEventID(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/api/events/")
	if rest == path {
		return "", false
	}
	id, found := strings.CutSuffix(rest, "/explain")
	if !found || strings.Contains(id, "/") {
		return "", false
	}
	decoded, err := url.PathUnescape(id)
	if err != nil {
		return id, true
	}
	return decoded, true
}
