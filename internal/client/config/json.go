package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/carebook/carebook/internal/flagx"
	"github.com/carebook/carebook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL     string         `json:"base_url"`
	DatabaseDSN string         `json:"database_dsn"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When neither flag is given, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
}
