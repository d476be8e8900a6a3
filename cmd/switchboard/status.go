package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which providers are configured",
		Long:  "Prints the availability of every supported provider and the provider used for auto requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, _, err := a.gateway(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), gw.Status())
		},
	}
}
