// Package config provides centralized configuration management for the engine.
// It loads settings from environment variables with sensible defaults and
// validates everything up front so embedding applications fail fast on
// misconfiguration.
package config

import "time"

// Config holds all engine configuration.
// All settings can be configured via environment variables.
type Config struct {
	Processing ProcessingConfig
	Values     ValuesConfig
	Logging    LoggingConfig
}

// ProcessingConfig holds row-processing settings.
type ProcessingConfig struct {
	// Workers is the number of concurrent row workers (default: 1, serial)
	Workers int `env:"PROCESSING_WORKERS" default:"1"`

	// StrictHeaders makes a batch fail before processing when required
	// canonical headers are missing from the input. When false (the
	// default) missing columns are filled with empty strings and reported.
	StrictHeaders bool `env:"PROCESSING_STRICT_HEADERS" default:"false"`
}

// ValuesConfig holds value-list store settings.
type ValuesConfig struct {
	// Dir is a directory of YAML value-list documents, one per field key.
	// Empty means the built-in lists are the only file-free source.
	Dir string `env:"VALUE_LIST_DIR"`

	// DatabaseURL enables the Postgres-backed value-list source when set.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility.
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// RefreshInterval is how often cached value lists are re-read from
	// their source (default: 0, refresh disabled)
	RefreshInterval time.Duration `env:"VALUE_LIST_REFRESH" default:"0s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
