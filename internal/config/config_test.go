package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Full config file", func(t *testing.T) {
		path := writeConfigFile(t, `
log:
  level: debug
  format: json
pricing:
  currency: EUR
availability:
  max_alternatives: 5
  default_search_window_days: 7
  max_search_window_days: 30
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "EUR", cfg.Pricing.Currency)
		assert.Equal(t, 5, cfg.Availability.MaxAlternatives)
		assert.Equal(t, 7, cfg.Availability.DefaultSearchWindowDays)
		assert.Equal(t, 30, cfg.Availability.MaxSearchWindowDays)
	})

	t.Run("Empty file gets defaults", func(t *testing.T) {
		path := writeConfigFile(t, "")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "USD", cfg.Pricing.Currency)
		assert.Equal(t, 10, cfg.Availability.MaxAlternatives)
		assert.Equal(t, 14, cfg.Availability.DefaultSearchWindowDays)
		assert.Equal(t, 90, cfg.Availability.MaxSearchWindowDays)
	})

	t.Run("Env vars override file values", func(t *testing.T) {
		path := writeConfigFile(t, `
pricing:
  currency: EUR
`)
		t.Setenv("PRICING_CURRENCY", "GBP")
		t.Setenv("AVAILABILITY_MAX_ALTERNATIVES", "3")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "GBP", cfg.Pricing.Currency)
		assert.Equal(t, 3, cfg.Availability.MaxAlternatives)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "log: [broken")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Bad currency code", func(t *testing.T) {
		cfg := &Config{}
		cfg.Pricing.Currency = "DOLLARS"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Max alternatives is capped", func(t *testing.T) {
		cfg := &Config{}
		cfg.Availability.MaxAlternatives = 50
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 10, cfg.Availability.MaxAlternatives)
	})

	t.Run("Default window must fit inside max", func(t *testing.T) {
		cfg := &Config{}
		cfg.Availability.DefaultSearchWindowDays = 120
		cfg.Availability.MaxSearchWindowDays = 90
		assert.Error(t, cfg.Validate())
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "USD", cfg.Pricing.Currency)
	assert.Equal(t, 14, cfg.Availability.DefaultSearchWindowDays)
}
