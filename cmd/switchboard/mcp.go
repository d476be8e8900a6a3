package main

import (
	"github.com/spf13/cobra"

	"github.com/spetersoncode/switchboard/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the gateway as an MCP server over stdio",
		Long: "Exposes the complete, provider_status and validate_provider tools to an MCP client. " +
			"Logs go to stderr; stdout carries the protocol.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, logger, err := a.gateway(cmd)
			if err != nil {
				return err
			}

			logger.Info("serving MCP over stdio", "version", version)
			return mcp.ServeStdio(gw,
				mcp.WithVersion(version),
				mcp.WithLogger(logger),
			)
		},
	}
}
