package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ProcessingConfig contains the transformation settings.
type ProcessingConfig struct {
	// RoundIncrementMinutes is the duration rounding granularity.
	RoundIncrementMinutes int `yaml:"round_increment_minutes" envconfig:"ROUND_INCREMENT_MINUTES"`
	// OutputSuffix is appended to the input filename stem for the report.
	OutputSuffix string `yaml:"output_suffix" envconfig:"OUTPUT_SUFFIX"`
	// HoursPrecision is the number of decimals shown in the Hours column.
	HoursPrecision int `yaml:"hours_precision" envconfig:"HOURS_PRECISION"`
	// SampleCount caps the duration-to-hours examples in the console report.
	SampleCount int `yaml:"sample_count" envconfig:"SAMPLE_COUNT"`
}

// Load builds the configuration from defaults, an optional config.yaml, and
// TSCLI_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("TSCLI", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML configuration onto cfg; absent keys keep their
// current values.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// configFilePath returns the first config file found in the common
// locations, or empty when none exists.
func configFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// validate checks the configuration for values the pipeline cannot run with.
func (c *Config) validate() error {
	if c.Processing.RoundIncrementMinutes <= 0 {
		return fmt.Errorf("round increment must be positive, got %d", c.Processing.RoundIncrementMinutes)
	}
	if c.Processing.HoursPrecision < 0 {
		return fmt.Errorf("hours precision must not be negative, got %d", c.Processing.HoursPrecision)
	}
	if c.Processing.OutputSuffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/tscli.log",
		},
		Processing: ProcessingConfig{
			RoundIncrementMinutes: 15,
			OutputSuffix:          "_processed",
			HoursPrecision:        2,
			SampleCount:           10,
		},
	}
}
