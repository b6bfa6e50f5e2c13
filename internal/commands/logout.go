package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskapp/internal/config"
	"taskapp/internal/exitcode"
	"taskapp/internal/service"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd removes the stored token. oauth_client.json is kept.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove stored credentials" }
func (c *LogoutCmd) Usage() string     { return "taskapp logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	msg := "not logged in"
	if cfg.HasToken() {
		if err := cfg.RemoveToken(); err != nil {
			fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
			return exitcode.AuthError
		}
		newLogger(cfg, errOut).WithField("path", cfg.TokenPath()).Debug("token removed")
		msg = "ok"
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, msg)
	}
	return exitcode.Success
}
