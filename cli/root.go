package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the pipeserve CLI.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pipeserve",
		Short:         "Serve pipelines behind a schema-validated HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	cmd.PersistentFlags().Bool("log-source", false, "include source locations in logs")
	cmd.AddCommand(serveCmd())
	return cmd
}
