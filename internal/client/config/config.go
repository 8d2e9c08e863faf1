package config

import "time"

// Config holds runtime settings for the kwitansi CLI.
type Config struct {
	// APIBaseURL is the root of the backend REST API, without a trailing
	// slash.
	APIBaseURL string

	// RequestTimeout bounds every API round-trip.
	RequestTimeout time.Duration

	// DatabasePath locates the local SQLite file holding the session
	// credential.
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "kwitansi.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
