package config

import (
	"os"
	"strconv"

	"schoolstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
	Output   OutputConfig
}

// DatabaseConfig holds database connection settings.
// URL may be empty; persistence is then disabled and reports stay in memory.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig names the dataset file and the columns the battery reads
type DataConfig struct {
	DatasetFile  string
	Sheet        string
	ScoreColumn  string
	GroupColumn  string
	BeforeColumn string
	AfterColumn  string
}

// AnalysisConfig holds the fixed parameters for a battery run
type AnalysisConfig struct {
	HypothesizedMean  float64
	PopulationStdDev  float64
	PopulationStdDevA float64
	PopulationStdDevB float64
	EqualVariance     bool
	Alpha             float64
}

// OutputConfig holds report and figure destinations
type OutputConfig struct {
	Dir     string
	Figures bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			DatasetFile:  getEnvOrDefault("DATASET_FILE", ""),
			Sheet:        getEnvOrDefault("DATASET_SHEET", ""),
			ScoreColumn:  getEnvOrDefault("SCORE_COLUMN", "score"),
			GroupColumn:  getEnvOrDefault("GROUP_COLUMN", "school"),
			BeforeColumn: getEnvOrDefault("BEFORE_COLUMN", ""),
			AfterColumn:  getEnvOrDefault("AFTER_COLUMN", ""),
		},
		Analysis: AnalysisConfig{
			HypothesizedMean:  getEnvFloatOrDefault("HYPOTHESIZED_MEAN", 70),
			PopulationStdDev:  getEnvFloatOrDefault("POPULATION_STDDEV", 0),
			PopulationStdDevA: getEnvFloatOrDefault("POPULATION_STDDEV_A", 0),
			PopulationStdDevB: getEnvFloatOrDefault("POPULATION_STDDEV_B", 0),
			EqualVariance:     getEnvBoolOrDefault("EQUAL_VARIANCE", false),
			Alpha:             getEnvFloatOrDefault("ALPHA", 0.05),
		},
		Output: OutputConfig{
			Dir:     getEnvOrDefault("OUTPUT_DIR", "./out"),
			Figures: getEnvBoolOrDefault("FIGURES", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.ScoreColumn == "" {
		return errors.ConfigInvalid("SCORE_COLUMN is required")
	}
	if config.Data.GroupColumn == "" {
		return errors.ConfigInvalid("GROUP_COLUMN is required")
	}
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("ALPHA must be in (0, 1)")
	}
	if (config.Data.BeforeColumn == "") != (config.Data.AfterColumn == "") {
		return errors.ConfigInvalid("BEFORE_COLUMN and AFTER_COLUMN must be set together")
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
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
