package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rofipaste/internal/process"
)

// Entry point for the application
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(env{runner: process.NewExecRunner()})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
