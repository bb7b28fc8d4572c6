package handlers

import (
	"net/http"

	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/registry"
)

// ToolsHandler serves the static tool catalog so the dashboard can render
// the available operations.
type ToolsHandler struct {
	logger *common.Logger
}

// NewToolsHandler creates a new tools catalog handler.
func NewToolsHandler(logger *common.Logger) *ToolsHandler {
	return &ToolsHandler{logger: logger}
}

// ServeHTTP handles GET /api/tools.
func (h *ToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tools": registry.Tools(),
	})
}
