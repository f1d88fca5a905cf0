package config

import (
	"os"
	"strings"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL string
	// ListenAddr enables the streamable HTTP transport when set
	// (e.g. ":8000"); empty means stdio.
	ListenAddr string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ListenAddr:  strings.TrimSpace(os.Getenv("MCP_LISTEN_ADDR")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskboard.db"
	}

	return cfg, nil
}
