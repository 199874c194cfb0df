package main

import (
	"log/slog"
	"os"

	"github.com/routeaudit/routeaudit/internal/cli"
	"github.com/routeaudit/routeaudit/internal/util"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx := util.SetupSignalHandler()

	// Execute the CLI
	if err := cli.Execute(ctx); err != nil {
		slog.Error(util.FriendlyError(err), "error", err)
		os.Exit(1)
	}
}
