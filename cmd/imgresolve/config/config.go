package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DeploymentsDir string
	Backend        string
	ResolveTimeout time.Duration
}

// Load loads configuration from environment variables
// Automatically loads .env file if present
func Load() *Config {
	// Try to load .env file (fail silently if not present)
	_ = godotenv.Load()

	cfg := &Config{
		DeploymentsDir: getEnv("DEPLOYMENTS_DIR", "deployments"),
		Backend:        getEnv("CATALOG_BACKEND", "ec2"),
		ResolveTimeout: getDuration("RESOLVE_TIMEOUT", 30*time.Second),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
