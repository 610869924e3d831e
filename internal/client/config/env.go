package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// already-set variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LANXPERT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LANXPERT_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("LANXPERT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LANXPERT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
