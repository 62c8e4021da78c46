package main

import (
	"fmt"

	"github.com/HendryAvila/picots/internal/config"
	picotsserver "github.com/HendryAvila/picots/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "picots",
		Version: picotsserver.Version,
		Short:   "PICOTS research question assistant (MCP server)",
		Long: `Picots helps frame a research question with PICOTS (Population,
Intervention, Comparison, Outcomes, Timing, Setting), flags methodological
pitfalls, and scores study quality.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "picots": {
        "command": "picots",
        "args": ["serve"]
      }
    }
  }`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// zap's production config writes to stderr; stdout belongs to
			// the stdio transport.
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			s := picotsserver.New(config.ResolveMode(cmd.Flags()), logger)
			if err := server.ServeStdio(s); err != nil {
				logger.Error("server stopped", zap.Error(err))
				return fmt.Errorf("serving stdio: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String(config.ModeFlag, string(config.ModeGuided),
		"Interaction mode: guided (tips and examples in responses) or expert. Overrides "+config.ModeEnv)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "picots v%s\n", picotsserver.Version)
		},
	}
}
