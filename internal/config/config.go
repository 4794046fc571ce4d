// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. Every value has
// a default: the embedded corpus makes the binary runnable with no
// environment at all.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] — the client is a public mobile/web app with no
	// credentialed requests.
	CORSOrigins []string

	// CorpusDir is an on-disk corpus directory that overrides the corpus
	// embedded in the binary. Empty means use the embedded corpus.
	CorpusDir string

	// HintURL is the endpoint of the external keyword classifier.
	// Empty disables hint lookups entirely.
	HintURL string

	// HintTimeout bounds each classifier call. Defaults to 3s.
	// Set HINT_TIMEOUT_MS to override.
	HintTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for values that are present but unusable.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		CorpusDir:   os.Getenv("CORPUS_DIR"),
		HintURL:     os.Getenv("HINT_URL"),
	}

	ms, err := strconv.Atoi(getEnv("HINT_TIMEOUT_MS", "3000"))
	if err != nil || ms <= 0 {
		return Config{}, fmt.Errorf("HINT_TIMEOUT_MS must be a positive integer, got %q", os.Getenv("HINT_TIMEOUT_MS"))
	}
	cfg.HintTimeout = time.Duration(ms) * time.Millisecond

	if cfg.CorpusDir != "" {
		info, err := os.Stat(cfg.CorpusDir)
		if err != nil {
			return Config{}, fmt.Errorf("CORPUS_DIR %q is not readable: %w", cfg.CorpusDir, err)
		}
		if !info.IsDir() {
			return Config{}, fmt.Errorf("CORPUS_DIR %q is not a directory", cfg.CorpusDir)
		}
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
