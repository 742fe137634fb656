package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists nearby.
// Missing files are fine; the variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// APIKey resolves the completion-service credential: an explicit override
// wins, else the OPENAI_API_KEY environment variable. May be empty; the
// completer constructor reports the typed error in that case.
func APIKey(override string) string {
	if override != "" {
		return strings.TrimSpace(override)
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}
