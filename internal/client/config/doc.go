// Package config loads runtime configuration for the Carebook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the backend REST API
//	-d string   path of the local credential database
//	-t int      per-request HTTP timeout (seconds, 0 = none)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "database_dsn": "carebook.db",
//	  "http_timeout": "30s"
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
