package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atlasops/atlas-console/internal/common"
)

// MCPProxy connects MCP tool calls to the mission REST API. Every tool call
// maps to exactly one HTTP request; there is no retry and no shared state
// beyond the base URL.
type MCPProxy struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewMCPProxy creates a new MCP proxy targeting the given mission API base URL.
// A trailing slash is normalized away so the base URL's own path prefix
// (e.g. an API Gateway stage) survives path joins.
func NewMCPProxy(baseURL string, logger *common.Logger) *MCPProxy {
	return &MCPProxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // replay and routing can wait on the remote model
		},
		logger: logger,
	}
}

// resolve joins a tool path template onto the base URL.
func (p *MCPProxy) resolve(path string) string {
	return p.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// get performs a GET request and returns the response body.
func (p *MCPProxy) get(path string) ([]byte, error) {
	p.logger.Debug().
		Str("method", "GET").
		Str("path", path).
		Msg("MCP Proxy Request")

	req, err := http.NewRequest(http.MethodGet, p.resolve(path), nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("MCP Proxy Request Failed")
		return nil, fmt.Errorf("GET %s: request failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: failed to read response: %w", path, err)
	}

	p.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Str("response", string(body)).
		Msg("MCP Proxy Response")

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("GET %s: server returned %d: %s", path, resp.StatusCode, string(body))
	}

	return body, nil
}

// post performs a POST request with a JSON body and returns the response body.
// A nil data value sends no body at all.
func (p *MCPProxy) post(path string, data interface{}) ([]byte, error) {
	p.logger.Debug().
		Str("method", "POST").
		Str("path", path).
		Str("data", fmt.Sprintf("%v", data)).
		Msg("MCP Proxy Request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(http.MethodPost, p.resolve(path), bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("MCP Proxy Request Failed")
		return nil, fmt.Errorf("POST %s: request failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("POST %s: failed to read response: %w", path, err)
	}

	p.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Str("response", string(body)).
		Msg("MCP Proxy Response")

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("POST %s: server returned %d: %s", path, resp.StatusCode, string(body))
	}

	return body, nil
}
