// Package client implements the REST client for the remote mission API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atlasops/atlas-console/internal/models"
)

// APIError is a non-2xx response from the mission API. It carries the status
// and the raw body so callers can surface the remote failure unchanged.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mission api returned %d: %s", e.StatusCode, e.Message)
}

// AtlasClient communicates with the mission API.
type AtlasClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAtlasClient creates a new client targeting the given mission API base URL.
// A trailing slash on the base URL is normalized away so path joins preserve
// any stage prefix (e.g. API Gateway's /prod).
func NewAtlasClient(baseURL string) *AtlasClient {
	return &AtlasClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// do performs a single HTTP request against the mission API and decodes the
// JSON response into out. Never retried; a non-2xx status becomes *APIError.
func (c *AtlasClient) do(ctx context.Context, method, path string, reqBody, out interface{}) error {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimPrefix(path, "/"), bodyReader)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mission api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body, resp.StatusCode),
			Body:       string(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// extractErrorMessage pulls the best human-readable message out of an error
// body, falling back to the HTTP status text.
func extractErrorMessage(body []byte, statusCode int) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return http.StatusText(statusCode)
}

// IngestEvent submits a field report.
// POST /ingest -> { eventId }
func (c *AtlasClient) IngestEvent(ctx context.Context, req models.IngestRequest) (*models.IngestResult, error) {
	var result models.IngestResult
	if err := c.do(ctx, http.MethodPost, "/ingest", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEvents fetches the mission feed.
// GET /events -> { events: [...] }
func (c *AtlasClient) ListEvents(ctx context.Context) (*models.EventList, error) {
	var result models.EventList
	if err := c.do(ctx, http.MethodGet, "/events", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExplainEvent fetches the scoring rationale for one event.
// GET /events/{id}/explain -> { eventId, rationale, ... }
func (c *AtlasClient) ExplainEvent(ctx context.Context, eventID string) (*models.Explanation, error) {
	var result models.Explanation
	path := "/events/" + url.PathEscape(eventID) + "/explain"
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AltRoute requests an alternative route between two points.
// POST /routes/alt -> { distanceKm, etaMin, polyline?, legs? }
func (c *AtlasClient) AltRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResult, error) {
	var result models.RouteResult
	if err := c.do(ctx, http.MethodPost, "/routes/alt", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetGeofenceAlert delivers a geofence alert.
// POST /alerts/geofence -> { delivered }
func (c *AtlasClient) SetGeofenceAlert(ctx context.Context, req models.GeofenceRequest) (*models.GeofenceResult, error) {
	var result models.GeofenceResult
	if err := c.do(ctx, http.MethodPost, "/alerts/geofence", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SimulateReplay starts the demo replay. The endpoint expects an explicit
// empty JSON object as the body.
// POST /simulate/replay -> { started, count }
func (c *AtlasClient) SimulateReplay(ctx context.Context) (*models.ReplayResult, error) {
	var result models.ReplayResult
	if err := c.do(ctx, http.MethodPost, "/simulate/replay", map[string]interface{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
