package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipeserve/pipeserve/engine/infra/server"
	"github.com/pipeserve/pipeserve/engine/pipeline"
	"github.com/pipeserve/pipeserve/pkg/config"
	"github.com/pipeserve/pipeserve/pkg/logger"
)

func serveCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pipeline serving HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				return err
			}
			// Config drives logging unless a flag was set explicitly.
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.Log.Level
			}
			if !cmd.Flags().Changed("log-json") {
				logJSON = cfg.Log.JSON
			}
			if !cmd.Flags().Changed("log-source") {
				logSource = cfg.Log.Source
			}
			logger.SetupLogger(logLevel, logJSON, logSource)

			registry := pipeline.NewRegistry(pipeline.NewManifestIntrospector(), nil)
			return server.NewServer(cfg, registry).Run()
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to a pipeserve config file")
	return cmd
}
