package main

import (
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <provider>",
		Short: "Check a provider with a minimal request",
		Long:  "Sends a short test prompt to the named provider and reports whether it answered.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, _, err := a.gateway(cmd)
			if err != nil {
				return err
			}

			env := gw.Validate(cmd.Context(), args[0])
			if err := printJSON(cmd.OutOrStdout(), env); err != nil {
				return err
			}
			if !env.Success {
				return errFailed
			}
			return nil
		},
	}
}
