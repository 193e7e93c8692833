// Package config
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	CollectTimeout time.Duration
	Plain          bool
	LogLevel       string
	LogFormat      string
}

const defaultCollectTimeout = 3 * time.Second

// Load reads configuration from the environment (with an optional .env
// file). There are no flags and no config file: the process boundary is
// environment-only.
func Load() *Config {
	godotenv.Load()

	timeout := defaultCollectTimeout
	if raw := os.Getenv("SPECCLE_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	plain := false
	if raw := os.Getenv("SPECCLE_PLAIN"); raw == "1" || raw == "true" {
		plain = true
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	return &Config{
		CollectTimeout: timeout,
		Plain:          plain,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}
}
