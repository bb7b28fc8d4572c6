package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/atlasops/atlas-console/internal/common"
)

// Config represents the portal configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig contains the remote mission API settings.
type APIConfig struct {
	URL string `toml:"url"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies ATLAS_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("ATLAS_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ATLAS_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if apiURL := os.Getenv("ATLAS_API_URL"); apiURL != "" {
		config.API.URL = apiURL
	}
	if level := os.Getenv("ATLAS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("ATLAS_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration and returns human-readable issues.
// The remote API URL is the one field the portal cannot run without.
func (c *Config) Validate() []string {
	var issues []string

	if c.API.URL == "" {
		issues = append(issues, "api.url is required (the mission API base URL; set ATLAS_API_URL or api.url in the config file)")
	} else if u, err := url.Parse(c.API.URL); err != nil || !u.IsAbs() || u.Host == "" {
		issues = append(issues, fmt.Sprintf("api.url %q is not an absolute URL", c.API.URL))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}

	return issues
}
