// Package config loads runtime configuration for the kwitansi CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported environment variables
//
//	KWITANSI_API_URL   base URL of the backend REST API
//	KWITANSI_TIMEOUT   request timeout, e.g. "30s"
//	KWITANSI_DB        path of the local session database
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a
// string like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "database_path": "kwitansi.db"
//	}
package config
