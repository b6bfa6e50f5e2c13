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
	Register(&HelpCmd{})
}

// HelpCmd prints usage.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskapp help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskapp                                     Add tasks read from stdin
  taskapp run [common flags] [--wait]         Add tasks read from stdin
  taskapp import [common flags] [--wait=false] [<list-name>]
  taskapp lists [common flags]
  taskapp login [common flags]
  taskapp logout [common flags]
  taskapp help
  taskapp version

Tasks are saved 5s after the last change. Without --wait, ending input
before then discards the pending save.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
