package config

import (
	"os"
	"strconv"

	"agencydash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Data     DataConfig
}

// DatabaseConfig holds database connection settings. The URL is only
// required by commands that persist dashboard configurations.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	File      string
	SheetName string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Data: DataConfig{
			File:      getEnvOrDefault("DATA_FILE", ""),
			SheetName: getEnvOrDefault("SHEET_NAME", "Sheet1"),
		},
	}
}

// RequireDatabase validates that a database URL is configured
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
