// Package config provides environment-backed configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds the run settings. Values come from the environment (a .env
// file is loaded by the CLI entry point); missing values fall back to the
// defaults below. DatabaseDSN and SerpAPIKey have no default and are
// checked by the subcommands that need them.
type Config struct {
	DataDir      string `validate:"required"`
	OutputDir    string `validate:"required"`
	LogDir       string `validate:"required"`
	DatabaseDSN  string
	DatabaseName string `validate:"required"`
	TableName    string `validate:"required"`
	MetricsPort  string `validate:"required,numeric"`
	SerpAPIKey   string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		DataDir:      getEnv("DATA_DIR", "data/edeka24"),
		OutputDir:    getEnv("OUTPUT_DIR", "data/output"),
		LogDir:       getEnv("LOG_DIR", "data/log"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		DatabaseName: getEnv("DATABASE_NAME", "grocery"),
		TableName:    getEnv("TABLE_NAME", "edeka24"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		SerpAPIKey:   os.Getenv("SERP_API_KEY"),
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
