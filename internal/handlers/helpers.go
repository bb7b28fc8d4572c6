package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atlasops/atlas-console/internal/client"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// WriteProxyError maps a mission API failure onto the local response: remote
// non-2xx statuses pass through with the raw body attached as details, and
// transport failures become 502.
func WriteProxyError(w http.ResponseWriter, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return WriteJSON(w, apiErr.StatusCode, map[string]string{
			"status":  "error",
			"error":   apiErr.Message,
			"details": apiErr.Body,
		})
	}
	return WriteError(w, http.StatusBadGateway, err.Error())
}
