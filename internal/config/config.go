package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	DBPath   string `envconfig:"DB_PATH" default:""`       // empty: ~/.studywiz/studywiz.db
	LogLevel string `envconfig:"LOG_LEVEL" default:"error"` // debug|info|warn|error
}

// Load reads STUDYWIZ_* environment variables into Config and resolves the
// default database location.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("studywiz", &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".studywiz", "studywiz.db")
	}
	return cfg, nil
}
