package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskapp/internal/config"
	"taskapp/internal/debounce"
	"taskapp/internal/exitcode"
	"taskapp/internal/output"
	"taskapp/internal/service"
	"taskapp/internal/task"
)

func init() {
	Register(&ImportCmd{})
}

// ImportCmd adds the open tasks of a Google Tasks list to the app.
// The remote list is only read.
type ImportCmd struct {
	wait  bool
	clock debounce.Clock
}

// SetClock replaces the wall clock (for testing).
func (c *ImportCmd) SetClock(clock debounce.Clock) { c.clock = clock }

// SetWait sets the --wait flag (for testing).
func (c *ImportCmd) SetWait(wait bool) { c.wait = wait }

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return []string{"pull"} }
func (c *ImportCmd) Synopsis() string  { return "Add the open tasks of a Google Tasks list" }
func (c *ImportCmd) Usage() string     { return "taskapp import [--wait=false] [<list-name>]" }
func (c *ImportCmd) NeedsAuth() bool   { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.wait, "wait", true, "")
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	list, code := resolveList(ctx, svc, strings.Join(args, " "), errOut)
	if code != exitcode.Success {
		return code
	}

	app := newApp(cfg, errOut, c.clock)
	defer app.Close()

	items, err := svc.ListOpenTasks(ctx, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	for _, item := range items {
		app.AddTask(task.WithID(item.ID, item.Title))
	}

	output.FormatSection(out, list.Title, list.IsDefault, app.Tasks())

	if c.wait {
		if err := app.Wait(ctx); err != nil {
			fmt.Fprintln(errOut, "error: cancelled before save")
			return exitcode.UserError
		}
	}
	return exitcode.Success
}

// resolveList finds a list by name, or the default list when name is blank.
func resolveList(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.TaskList, int) {
	name = strings.TrimSpace(name)
	if name == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError
		}
		return list, exitcode.Success
	}

	list, err := svc.ResolveList(ctx, name)
	switch {
	case err == nil:
		return list, exitcode.Success
	case errors.Is(err, service.ErrListNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", name)
		return service.TaskList{}, exitcode.UserError
	case errors.Is(err, service.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
		return service.TaskList{}, exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.TaskList{}, exitcode.BackendError
	}
}
