package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/registry"
)

// Config holds the CLI configuration loaded from environment variables.
// Command-line flags override it.
type Config struct {
	// RegistryPath is an optional YAML file overriding the built-in provider table.
	RegistryPath string
	LogLevel     string // debug, info, warn, error

	// Gateway
	Timeout    time.Duration
	Attempts   int
	Preference []ai.Provider
}

// LoadConfig loads configuration from environment variables.
// With an empty envFile it loads ./.env if present (silent when missing);
// a named env file must exist. Variables already set are never overridden.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	preference, err := parsePreference(os.Getenv("SWITCHBOARD_PREFERENCE"))
	if err != nil {
		return nil, fmt.Errorf("SWITCHBOARD_PREFERENCE: %w", err)
	}

	cfg := &Config{
		RegistryPath: os.Getenv("SWITCHBOARD_CONFIG"),
		LogLevel:     getEnvOrDefault("SWITCHBOARD_LOG_LEVEL", "info"),
		Timeout:      getEnvDurationOrDefault("SWITCHBOARD_TIMEOUT", 60*time.Second),
		Attempts:     getEnvIntOrDefault("SWITCHBOARD_RETRIES", 1),
		Preference:   preference,
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Attempts < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", c.Attempts)
	}
	return nil
}

// Registry loads the provider table, applying the override file when configured.
func (c *Config) Registry() (*registry.Registry, error) {
	if c.RegistryPath == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(c.RegistryPath)
}

// RetryConfig returns the gateway retry policy. One attempt disables retries.
func (c *Config) RetryConfig() ai.RetryConfig {
	if c.Attempts <= 1 {
		return ai.DisabledRetryConfig()
	}
	cfg := ai.DefaultRetryConfig()
	cfg.MaxAttempts = c.Attempts
	return cfg
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (must be debug, info, warn, or error)", s)
	}
}

// parsePreference reads a comma separated provider list.
func parsePreference(s string) ([]ai.Provider, error) {
	var out []ai.Provider
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, err := ai.ParseProvider(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
