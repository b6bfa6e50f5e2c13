package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskapp/internal/config"
	"taskapp/internal/exitcode"
	"taskapp/internal/output"
	"taskapp/internal/service"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd is the list picker for import: it prints each Google Tasks list
// name in the form import accepts as its argument. The default list is marked.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Show the list names import can read" }
func (c *ListsCmd) Usage() string     { return "taskapp lists [common flags]" }
func (c *ListsCmd) NeedsAuth() bool   { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	lists, err := svc.ListLists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if len(lists) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no lists found")
		return exitcode.Success
	}
	for _, list := range lists {
		output.FormatListName(out, list)
	}
	return exitcode.Success
}
