package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/atlasops/atlas-console/internal/client"
	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/models"
	"github.com/atlasops/atlas-console/internal/polyline"
)

// RoutingHandler proxies alternative-route requests to the mission API and
// decodes the returned polyline so the map can render it without a client-side
// decoder.
type RoutingHandler struct {
	logger *common.Logger
	client *client.AtlasClient
}

// NewRoutingHandler creates a new routing handler.
func NewRoutingHandler(logger *common.Logger, c *client.AtlasClient) *RoutingHandler {
	return &RoutingHandler{logger: logger, client: c}
}

// routeResponse is the mission API route result plus the decoded polyline.
type routeResponse struct {
	models.RouteResult
	Points []polyline.Point `json:"points,omitempty"`
}

// ServeAltRoute handles POST /api/routes/alt.
func (h *RoutingHandler) ServeAltRoute(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.client.AltRoute(r.Context(), req)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("alt route failed")
		WriteProxyError(w, err)
		return
	}

	resp := routeResponse{RouteResult: *result}
	if result.Polyline != "" {
		resp.Points = polyline.Decode(result.Polyline)
	}

	WriteJSON(w, http.StatusOK, resp)
}
