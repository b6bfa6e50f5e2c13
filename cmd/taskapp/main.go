// Package main is the entry point for the taskapp CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskapp/internal/backend/googletasks"
	"taskapp/internal/cli"
	"taskapp/internal/commands"
	"taskapp/internal/config"
	"taskapp/internal/service"
)

func main() {
	// Interrupt cancels the context; commands tear down their app and return.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
