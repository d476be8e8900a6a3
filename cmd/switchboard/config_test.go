package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ai "github.com/spetersoncode/switchboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var providerKeys = []string{"OPENAI_API_KEY", "OPENROUTER_API_KEY", "ANTHROPIC_API_KEY", "GOOGLE_API_KEY"}

var configKeys = []string{
	"SWITCHBOARD_CONFIG", "SWITCHBOARD_LOG_LEVEL", "SWITCHBOARD_TIMEOUT",
	"SWITCHBOARD_RETRIES", "SWITCHBOARD_PREFERENCE",
}

// isolate runs the test in an empty directory with no credentials or
// switchboard settings in the environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range append(append([]string{}, providerKeys...), configKeys...) {
		t.Setenv(k, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolate(t)

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Empty(t, cfg.RegistryPath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 60*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.Attempts)
		assert.Nil(t, cfg.Preference)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reads environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("SWITCHBOARD_CONFIG", "/etc/switchboard.yaml")
		t.Setenv("SWITCHBOARD_LOG_LEVEL", "debug")
		t.Setenv("SWITCHBOARD_TIMEOUT", "5s")
		t.Setenv("SWITCHBOARD_RETRIES", "3")
		t.Setenv("SWITCHBOARD_PREFERENCE", "Anthropic, google")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "/etc/switchboard.yaml", cfg.RegistryPath)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.Attempts)
		assert.Equal(t, []ai.Provider{ai.ProviderAnthropic, ai.ProviderGoogle}, cfg.Preference)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		isolate(t)
		t.Setenv("SWITCHBOARD_TIMEOUT", "soon")
		t.Setenv("SWITCHBOARD_RETRIES", "many")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, 60*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.Attempts)
	})

	t.Run("unknown preference", func(t *testing.T) {
		isolate(t)
		t.Setenv("SWITCHBOARD_PREFERENCE", "openai,acme")

		_, err := LoadConfig("")
		assert.ErrorIs(t, err, ai.ErrUnknownProvider)
	})

	t.Run("loads a named env file", func(t *testing.T) {
		isolate(t)
		os.Unsetenv("SWITCHBOARD_LOG_LEVEL")

		path := filepath.Join(t.TempDir(), "switchboard.env")
		require.NoError(t, os.WriteFile(path, []byte("SWITCHBOARD_LOG_LEVEL=warn\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing named env file", func(t *testing.T) {
		isolate(t)

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorContains(t, err, "load env file")
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{LogLevel: "info", Timeout: time.Second, Attempts: 1}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "warning alias", mutate: func(c *Config) { c.LogLevel = "WARNING" }},
		{name: "zero timeout disables it", mutate: func(c *Config) { c.Timeout = 0 }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "unknown log level"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "zero attempts", mutate: func(c *Config) { c.Attempts = 0 }, wantErr: "retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigRetryConfig(t *testing.T) {
	t.Run("single attempt disables retries", func(t *testing.T) {
		cfg := Config{Attempts: 1}
		assert.Equal(t, ai.DisabledRetryConfig(), cfg.RetryConfig())
	})

	t.Run("more attempts use backoff", func(t *testing.T) {
		cfg := Config{Attempts: 4}
		rc := cfg.RetryConfig()
		assert.Equal(t, 4, rc.MaxAttempts)
		assert.Equal(t, ai.DefaultRetryConfig().InitialDelay, rc.InitialDelay)
	})
}

func TestConfigRegistry(t *testing.T) {
	t.Run("built-in table", func(t *testing.T) {
		reg, err := (&Config{}).Registry()
		require.NoError(t, err)
		assert.Len(t, reg.Providers(), 4)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "providers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("preference: [google, openai]\n"), 0o600))

		reg, err := (&Config{RegistryPath: path}).Registry()
		require.NoError(t, err)
		assert.Equal(t, []ai.Provider{ai.ProviderGoogle, ai.ProviderOpenAI}, reg.Preference())
	})
}

func TestParsePreference(t *testing.T) {
	got, err := parsePreference(" openrouter ,,OPENAI,")
	require.NoError(t, err)
	assert.Equal(t, []ai.Provider{ai.ProviderOpenRouter, ai.ProviderOpenAI}, got)

	got, err = parsePreference("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parsePreference("auto")
	assert.ErrorIs(t, err, ai.ErrUnknownProvider)
}
