package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/atlasops/atlas-console/internal/registry"
)

// errorResult wraps a failure message as an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// toolResult wraps a successful mission API response in the standard
// envelope: the parsed JSON value unchanged as structured content, plus an
// indented rendering as text. The payload itself is never transformed.
func toolResult(body []byte) *mcp.CallToolResult {
	var structured interface{}
	if err := json.Unmarshal(body, &structured); err != nil {
		return errorResult(fmt.Sprintf("Error parsing response: %v", err))
	}

	pretty, err := json.MarshalIndent(structured, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error rendering response: %v", err))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(pretty)),
		},
		StructuredContent: structured,
	}
}

// toolHandler creates the dispatch handler for one registry tool: it
// validates arguments against the descriptor, resolves the remote path, and
// performs exactly one HTTP request. Validation failures return before any
// network call.
func toolHandler(p *MCPProxy, tool registry.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := tool.Path
		body := map[string]interface{}{}
		args := request.GetArguments()

		for _, param := range tool.Params {
			switch param.In {
			case registry.InPath:
				val := request.GetString(param.Name, "")
				if err := param.ValidateString(val); err != nil {
					return errorResult(fmt.Sprintf("Error: %v", err)), nil
				}
				path = tool.ResolvePath(param.Name, val)

			case registry.InBody:
				if param.Type == "number" {
					if v, ok := args[param.Name]; ok {
						body[param.Name] = v
					} else if param.Default != nil {
						body[param.Name] = *param.Default
					}
					continue
				}
				val := request.GetString(param.Name, "")
				if err := param.ValidateString(val); err != nil {
					return errorResult(fmt.Sprintf("Error: %v", err)), nil
				}
				if val != "" {
					body[param.Name] = val
				}
			}
		}

		var respBody []byte
		var err error
		switch tool.Method {
		case "GET":
			respBody, err = p.get(path)
		case "POST":
			var payload interface{}
			if len(body) > 0 || tool.SendEmptyBody {
				payload = body
			}
			respBody, err = p.post(path, payload)
		default:
			return errorResult(fmt.Sprintf("Error: unsupported method %s", tool.Method)), nil
		}

		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return toolResult(respBody), nil
	}
}
