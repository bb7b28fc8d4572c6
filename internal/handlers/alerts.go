package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/atlasops/atlas-console/internal/client"
	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/models"
)

// AlertsHandler proxies geofence alerts and the demo replay to the mission API.
type AlertsHandler struct {
	logger *common.Logger
	client *client.AtlasClient
}

// NewAlertsHandler creates a new alerts handler.
func NewAlertsHandler(logger *common.Logger, c *client.AtlasClient) *AlertsHandler {
	return &AlertsHandler{logger: logger, client: c}
}

// ServeGeofence handles POST /api/alerts/geofence.
func (h *AlertsHandler) ServeGeofence(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.GeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.client.SetGeofenceAlert(r.Context(), req)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("geofence alert failed")
		WriteProxyError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ServeReplay handles POST /api/simulate/replay.
func (h *AlertsHandler) ServeReplay(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	result, err := h.client.SimulateReplay(r.Context())
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("replay failed")
		WriteProxyError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
