package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/config"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name   string `toml:"name"`
	Port   string `toml:"port"`
	APIURL string `toml:"api_url"`
}

// Config holds all atlas-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Logging common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults. The mission API
// URL has no default: starting without one is a fatal configuration error.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name: "Atlas-MCP",
			Port: "4302",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	// Apply environment overrides (matches atlas-portal patterns)
	if apiURL := os.Getenv("ATLAS_API_URL"); apiURL != "" {
		cfg.Server.APIURL = apiURL
	}
	if port := os.Getenv("ATLAS_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("ATLAS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for MCP clients)")
	configFile := flag.String("config", "atlas-mcp.toml", "Path to config file")
	flag.Parse()

	// .env is optional; real env vars still win inside loadConfig.
	_ = godotenv.Load()

	cfg := loadConfig(*configFile)

	if cfg.Server.APIURL == "" {
		fmt.Fprintln(os.Stderr, "atlas-mcp: mission API base URL is not configured")
		fmt.Fprintln(os.Stderr, "Set ATLAS_API_URL or server.api_url in atlas-mcp.toml.")
		os.Exit(1)
	}

	// Logging goes to stderr (and optionally a file); stdout belongs to the
	// JSON-RPC stream when -stdio is set.
	logger := common.NewLoggerFromConfig(cfg.Logging)

	proxy := NewMCPProxy(cfg.Server.APIURL, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, proxy)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("api_url", cfg.Server.APIURL).
		Msg("starting MCP Streamable HTTP")

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
