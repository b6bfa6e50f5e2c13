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

// Version is the application version. Set at build time with -ldflags.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "taskapp version" }
func (c *VersionCmd) NeedsAuth() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
	return exitcode.Success
}
