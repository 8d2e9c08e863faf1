package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; a missing file is fine.
// Unparsable values are ignored rather than fatal so a stray variable
// cannot brick the CLI.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("KWITANSI_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("KWITANSI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("KWITANSI_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
