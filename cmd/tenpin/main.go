package main

import (
	"os"

	"github.com/bft-labs/tenpin/pkg/log"
)

func main() {
	logger := log.NewConsoleLogger(os.Stderr)

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logger.Error().Err(err).Msg("tenpin")
		os.Exit(1)
	}
}
