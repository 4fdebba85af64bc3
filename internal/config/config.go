// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config carries the settings for the CLI and HTTP server.
type Config struct {
	Addr       string
	LogLevel   string
	SourceURL  string
	UserAgent  string
	FetchDelay time.Duration
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.9; rv:34.0) Gecko/20100101 Firefox/34.0"

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; missing files are not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       ":8080",
		LogLevel:   "info",
		SourceURL:  "http://view.websudoku.com",
		UserAgent:  defaultUserAgent,
		FetchDelay: 30 * time.Second,
	}
	if v := os.Getenv("SUDOKU_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SUDOKU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SUDOKU_SOURCE_URL"); v != "" {
		cfg.SourceURL = v
	}
	if v := os.Getenv("SUDOKU_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SUDOKU_FETCH_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchDelay = d
		}
	}
	return cfg
}

// ZerologLevel maps the configured level name to a zerolog level, defaulting
// to info.
func (c Config) ZerologLevel() zerolog.Level {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
