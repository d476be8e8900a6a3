package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/switchboard/client"
	"github.com/spetersoncode/switchboard/credential"
	"github.com/spetersoncode/switchboard/gateway"
)

// errFailed is returned after a failure envelope has been printed.
var errFailed = errors.New("operation failed")

// app carries the persistent flag values shared by every subcommand.
type app struct {
	cfgPath  string
	envFile  string
	logLevel string
	timeout  time.Duration
	retries  int
	prefer   []string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "switchboard",
		Short: "Route chat completions across AI providers",
		Long: "Switchboard sends chat completions to OpenAI, OpenRouter, Anthropic or Google " +
			"through one interface and prints a uniform JSON envelope for every result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgPath, "config", "c", "", "provider registry YAML (default: SWITCHBOARD_CONFIG env var)")
	flags.StringVar(&a.envFile, "env-file", "", "env file with provider credentials (default: ./.env when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default: SWITCHBOARD_LOG_LEVEL or info)")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-attempt provider timeout (default: SWITCHBOARD_TIMEOUT or 60s)")
	flags.IntVar(&a.retries, "retries", 0, "attempts for rate-limited or unavailable providers (default: SWITCHBOARD_RETRIES or 1)")
	flags.StringSliceVar(&a.prefer, "prefer", nil, "provider preference order for auto selection")

	root.AddCommand(
		newStatusCmd(a),
		newCompleteCmd(a),
		newValidateCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return root
}

// config resolves the configuration: environment first, then explicitly set flags.
func (a *app) config(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(a.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.RegistryPath = a.cfgPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("retries") {
		cfg.Attempts = a.retries
	}
	if flags.Changed("prefer") {
		preference, err := parsePreference(strings.Join(a.prefer, ","))
		if err != nil {
			return nil, fmt.Errorf("--prefer: %w", err)
		}
		cfg.Preference = preference
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// gateway builds the provider clients and the gateway in front of them.
func (a *app) gateway(cmd *cobra.Command) (*gateway.Gateway, *slog.Logger, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	reg, err := cfg.Registry()
	if err != nil {
		return nil, nil, err
	}

	creds := credential.Load(os.LookupEnv, reg)
	set := client.NewFactory(client.WithLogger(logger)).Build(cmd.Context(), reg, creds)

	preference := cfg.Preference
	if len(preference) == 0 {
		preference = reg.Preference()
	}
	if len(preference) == 0 {
		preference = gateway.DefaultPreference
	}
	sel := gateway.NewSelector(set, preference)

	if h, ok := sel.Active(); ok {
		logger.Debug("gateway ready", "active", h.Provider(), "available", sel.Available(), "order", sel.Order())
	} else {
		logger.Warn("no AI provider configured")
	}

	gw := gateway.New(sel,
		gateway.WithLogger(logger),
		gateway.WithRetry(cfg.RetryConfig()),
		gateway.WithTimeout(cfg.Timeout),
	)
	return gw, logger, nil
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	logLevel, err := parseLevel(level)
	if err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
