package config

import (
	"fmt"
	"os"

	"invoicer/internal/logger"
	"invoicer/internal/refdata"
)

type Config struct {
	// DefaultLocale selects the string table used when the caller does
	// not pick one explicitly.
	DefaultLocale string

	// ReferenceDataFile optionally points at a YAML file with currency
	// and translation tables. Empty means the built-in static tables.
	ReferenceDataFile string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		DefaultLocale:     getEnv("INVOICE_LOCALE", "en"),
		ReferenceDataFile: getEnv("REFERENCE_DATA_FILE", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DefaultLocale == "" {
		return fmt.Errorf("INVOICE_LOCALE must not be empty")
	}
	return nil
}

// Provider builds the reference data provider the configuration calls
// for: the file-backed tables when REFERENCE_DATA_FILE is set, the
// built-in static tables otherwise.
func (c *Config) Provider() (refdata.Provider, error) {
	if c.ReferenceDataFile != "" {
		return refdata.NewFileProvider(c.ReferenceDataFile)
	}
	return refdata.NewStaticProvider(), nil
}

// GetLoggerConfig returns a logger configuration from the main config.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
