package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context cancelled on SIGINT or SIGTERM, giving
// an in-flight audit the chance to drain its workers and still print what it
// collected. A second signal aborts the process without waiting.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		cancel()

		sig = <-sigCh
		slog.Warn("second signal, aborting", "signal", sig.String())
		os.Exit(1)
	}()

	return ctx
}
