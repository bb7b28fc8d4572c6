package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/atlasops/atlas-console/internal/registry"
)

// registerTools registers every tool from the static registry on the MCP
// server, wiring each to the generic dispatch handler.
func registerTools(s *server.MCPServer, p *MCPProxy) {
	for _, tool := range registry.Tools() {
		s.AddTool(buildTool(tool), toolHandler(p, tool))
	}
}

// buildTool converts a registry descriptor into an mcp.Tool with the
// matching input schema.
func buildTool(t registry.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(t.Name, opts...)
}

// buildParamOption maps a registry param to the appropriate mcp-go tool option.
func buildParamOption(p registry.Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case "number":
		return mcp.WithNumber(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}
