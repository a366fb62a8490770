package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// WaitForShutdown blocks until the process is asked to stop or ctx ends. It
// returns the received signal, or nil when ctx ended first.
func WaitForShutdown(ctx context.Context) os.Signal {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sc)

	select {
	case sig := <-sc:
		slog.Info("Shutdown signal received, stopping Dinogen tracker", "signal", sig.String())
		return sig
	case <-ctx.Done():
		slog.Info("Stopping Dinogen tracker", "reason", ctx.Err())
		return nil
	}
}
