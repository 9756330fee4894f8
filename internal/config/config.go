// Package config reads the process configuration from the environment, with
// an optional .env file for development.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	// APIKey authenticates every TMDB request. Required.
	APIKey string

	// Debug routes slog output to a local log file when set. A TUI owns
	// the terminal, so there is nowhere else for logs to go.
	Debug bool

	// LogFile is where debug logs are written.
	LogFile string
}

// ErrMissingAPIKey is returned when TMDB_API_KEY is unset; startup must fail
// fast rather than issue unauthenticated requests.
var ErrMissingAPIKey = errors.New("TMDB_API_KEY is not set; add it to the environment or a .env file")

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:  os.Getenv("TMDB_API_KEY"),
		Debug:   os.Getenv("FILMCHECK_DEBUG") != "",
		LogFile: getenv("FILMCHECK_LOG", "filmcheck.log"),
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
