package main

import (
	"os"

	"github.com/pipeserve/pipeserve/cli"
	"github.com/pipeserve/pipeserve/pkg/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
