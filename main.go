package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/pathwhat/cmd"
	"github.com/grovetools/pathwhat/pkg/winshell"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	resolver, err := winshell.New(logger)
	if err != nil {
		logger.WithError(err).Error("could not initialize shell resolver")
		return 1
	}
	defer resolver.Close()

	rootCmd := cmd.NewRootCmd(resolver, logger)
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
