package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	ai "github.com/spetersoncode/switchboard"
)

type completeFlags struct {
	provider    string
	model       string
	system      string
	temperature float64
	maxTokens   int
}

func newCompleteCmd(a *app) *cobra.Command {
	f := &completeFlags{}

	cmd := &cobra.Command{
		Use:   "complete [prompt]",
		Short: "Send a chat completion",
		Long: "Sends the prompt to a provider and prints the result envelope. " +
			"Without a prompt argument the prompt is read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readPrompt(cmd, args)
			if err != nil {
				return err
			}

			gw, _, err := a.gateway(cmd)
			if err != nil {
				return err
			}

			env := gw.Complete(cmd.Context(), f.messages(prompt), f.options(cmd)...)
			if err := printJSON(cmd.OutOrStdout(), env); err != nil {
				return err
			}
			if !env.Success {
				return errFailed
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.provider, "provider", "p", ai.ProviderAuto, "provider to use, or auto")
	flags.StringVarP(&f.model, "model", "m", "", "model name (default: the provider's chat model)")
	flags.StringVarP(&f.system, "system", "s", "", "system prompt")
	flags.Float64VarP(&f.temperature, "temperature", "t", ai.DefaultTemperature, "sampling temperature")
	flags.IntVar(&f.maxTokens, "max-tokens", ai.DefaultMaxTokens, "maximum tokens to generate")
	return cmd
}

func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(data), nil
}

func (f *completeFlags) messages(prompt string) []ai.Message {
	var msgs []ai.Message
	if f.system != "" {
		msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: f.system})
	}
	return append(msgs, ai.Message{Role: ai.RoleUser, Content: prompt})
}

// options passes only what the caller set, leaving the rest to the gateway defaults.
func (f *completeFlags) options(cmd *cobra.Command) []ai.Option {
	opts := []ai.Option{ai.WithProvider(f.provider)}
	if f.model != "" {
		opts = append(opts, ai.WithModel(f.model))
	}
	if cmd.Flags().Changed("temperature") {
		opts = append(opts, ai.WithTemperature(f.temperature))
	}
	if cmd.Flags().Changed("max-tokens") {
		opts = append(opts, ai.WithMaxTokens(f.maxTokens))
	}
	return opts
}
