package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the engine configuration
type Config struct {
	Log          LogConfig          `yaml:"log"`
	Pricing      PricingConfig      `yaml:"pricing"`
	Availability AvailabilityConfig `yaml:"availability"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PricingConfig contains pricing engine settings
type PricingConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code stamped on quotes and fees
}

// AvailabilityConfig contains availability engine settings
type AvailabilityConfig struct {
	MaxAlternatives         int `yaml:"max_alternatives"`          // hard-capped at 10
	DefaultSearchWindowDays int `yaml:"default_search_window_days"`
	MaxSearchWindowDays     int `yaml:"max_search_window_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied, for callers
// embedding the engines without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.overrideWithEnv()
	if err := cfg.Validate(); err != nil {
		// Defaults always validate; a failure here is a programming error.
		panic(err)
	}
	return cfg
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("PRICING_CURRENCY"); val != "" {
		c.Pricing.Currency = val
	}
	if val := os.Getenv("AVAILABILITY_MAX_ALTERNATIVES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Availability.MaxAlternatives)
	}
	if val := os.Getenv("AVAILABILITY_SEARCH_WINDOW_DAYS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Availability.DefaultSearchWindowDays)
	}
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Pricing.Currency == "" {
		c.Pricing.Currency = "USD"
	}
	if len(c.Pricing.Currency) != 3 {
		return fmt.Errorf("invalid currency code: %q", c.Pricing.Currency)
	}

	if c.Availability.MaxAlternatives <= 0 {
		c.Availability.MaxAlternatives = 10
	}
	if c.Availability.MaxAlternatives > 10 {
		// Alternative-date responses carry at most 10 candidates.
		c.Availability.MaxAlternatives = 10
	}
	if c.Availability.DefaultSearchWindowDays <= 0 {
		c.Availability.DefaultSearchWindowDays = 14
	}
	if c.Availability.MaxSearchWindowDays <= 0 {
		c.Availability.MaxSearchWindowDays = 90
	}
	if c.Availability.DefaultSearchWindowDays > c.Availability.MaxSearchWindowDays {
		return fmt.Errorf("default search window (%d days) exceeds max (%d days)",
			c.Availability.DefaultSearchWindowDays, c.Availability.MaxSearchWindowDays)
	}

	return nil
}
