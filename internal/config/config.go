package config

import (
	"os"
	"strconv"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Report   ReportConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	Title         string
	AssetDir      string
	OutputDir     string
	ChartsEnabled bool
}

// DatabaseConfig holds optional report-run persistence settings.
// An empty URL disables persistence.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Report: ReportConfig{
			Title:         getEnvOrDefault("REPORT_TITLE", "Automated Data Analysis Report"),
			AssetDir:      getEnvOrDefault("CHART_ASSET_DIR", os.TempDir()),
			OutputDir:     getEnvOrDefault("REPORT_OUTPUT_DIR", "."),
			ChartsEnabled: getEnvBoolOrDefault("CHARTS_ENABLED", true),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Report.Title == "" {
		return errors.ConfigInvalid("report title cannot be empty")
	}
	if config.Report.AssetDir == "" {
		return errors.ConfigInvalid("chart asset directory cannot be empty")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
