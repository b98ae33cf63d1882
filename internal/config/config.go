package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	productionBaseURL  = "https://gather.app/api"
	developmentBaseURL = "http://localhost:5000"
)

// Config holds everything the client needs, resolved from the environment.
type Config struct {
	// BaseURL is the API root every request path is joined to.
	BaseURL string
	// DataDir holds the keyring database and its secret file.
	DataDir string
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string
}

// FromEnv loads an optional .env file and resolves configuration from
// GATHER_* variables. GATHER_API_URL overrides the base URL outright;
// otherwise GATHER_ENV=production selects the hosted API base path and
// anything else falls back to the local development server.
func FromEnv() (Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:  strings.TrimRight(os.Getenv("GATHER_API_URL"), "/"),
		DataDir:  os.Getenv("GATHER_DATA_DIR"),
		LogLevel: os.Getenv("GATHER_LOG_LEVEL"),
	}

	if cfg.BaseURL == "" {
		if strings.EqualFold(os.Getenv("GATHER_ENV"), "production") {
			cfg.BaseURL = productionBaseURL
		} else {
			cfg.BaseURL = developmentBaseURL
		}
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "gather")
	}

	return cfg, nil
}

// KeyringPath returns the location of the keyring database inside DataDir.
func (c Config) KeyringPath() string {
	return filepath.Join(c.DataDir, "keyring.db")
}

// SecretPath returns the location of the keyring sealing secret.
func (c Config) SecretPath() string {
	return filepath.Join(c.DataDir, "keyring.secret")
}
