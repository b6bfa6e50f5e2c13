// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskapp/internal/commands"
	"taskapp/internal/config"
	"taskapp/internal/exitcode"
	"taskapp/internal/service"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "run"

// ServiceFactory creates the Google Tasks service for commands that need it.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a dispatcher over registry.
// A nil factory means auth-requiring commands only get pre-flight checks.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses args, runs the selected command and returns its exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	name := DefaultCommand
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	// Common flags are only accepted after the command name.
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatch(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	var svc service.Service
	if cmd.NeedsAuth() {
		var code int
		svc, code = d.connect(ctx, cfg, errOut)
		if code != exitcode.Success {
			return code
		}
	}

	return cmd.Run(ctx, cfg, svc, positional, out, errOut)
}

// connect checks credentials and builds the service.
func (d *Dispatcher) connect(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Service, int) {
	if d.factory == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
			return nil, exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: taskapp login)")
			return nil, exitcode.AuthError
		}
		fmt.Fprintln(errOut, "error: no backend configured")
		return nil, exitcode.BackendError
	}

	svc, err := d.factory(ctx, cfg)
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "token") || strings.Contains(msg, "auth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return nil, exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return nil, exitcode.BackendError
	}
	return svc, exitcode.Success
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "flag provided but not defined: "); ok {
		return "unknown flag: " + rest
	}
	return msg
}
