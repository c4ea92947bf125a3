// Package main provides the minitorch CLI.
package main

import (
	"os"

	"github.com/born-ml/minitorch/cmd/minitorch/internal/cli"
	"github.com/born-ml/minitorch/internal/logger"
)

func main() {
	err := cli.NewApp(os.Stdout).CreateRootCommand().Execute()
	if err != nil {
		logger.Error("command failed", "err", err)
	}
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
