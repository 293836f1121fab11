package main

import (
	"os"

	"github.com/iostrovok/trimothy/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.New().
			Writer(os.Stderr).
			Error(err).
			Errorf("command failed")
		os.Exit(1)
	}
}
