package config

import "time"

// Config holds runtime settings for the Carebook CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API.
//   - DatabaseDSN: path of the on-device SQLite credential database.
//   - HTTPTimeout: per-request timeout; zero means none, matching the mobile
//     client's behavior of letting a hung request stay pending.
type Config struct {
	BaseURL     string
	DatabaseDSN string
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://health-care-backend-tawny.vercel.app"
	c.DatabaseDSN = "carebook.db"
	c.HTTPTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
