package config

import "github.com/atlasops/atlas-console/internal/common"

// NewDefaultConfig creates a configuration with default values.
// The remote API URL has no default on purpose: starting without one is a
// configuration error surfaced by Validate.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4301,
			Host: "localhost",
		},
		API: APIConfig{
			URL: "",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Format:  "text",
			Outputs: []string{"console"},
		},
	}
}
