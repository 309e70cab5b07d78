package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvDocsDir      = "CHARTYTOOLS_DOCS_DIR"
	EnvSourcePrefix = "CHARTYTOOLS_SOURCE_PREFIX"
)

// envFiles are tried in order; the first one present wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from the first .env file found.
// Existing process environment variables are not overwritten.
func loadEnvFile() (string, error) {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", err
		}
		return envPath, nil
	}
	return "", errors.New("no .env file found")
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDocsDir); ok && v != "" {
		cfg.Docs.BaseDir = v
	}
	// An empty prefix is meaningful: it disables shortening.
	if v, ok := os.LookupEnv(EnvSourcePrefix); ok {
		cfg.Stability.SourcePrefix = v
	}
}
