// Package main is the entry point for the Dragon Paving site.
// Its sole responsibility is running the CLI; wiring lives in internal/cli.
package main

import (
	"log/slog"
	"os"

	"github.com/pkordes/dragon-paving/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
