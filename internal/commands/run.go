package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskapp/internal/config"
	"taskapp/internal/debounce"
	"taskapp/internal/exitcode"
	"taskapp/internal/output"
	"taskapp/internal/service"
	"taskapp/internal/task"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd reads task titles from stdin, one per line, and adds each to the app.
// It is the default command.
type RunCmd struct {
	wait  bool
	in    io.Reader
	clock debounce.Clock
}

// SetInput replaces stdin (for testing).
func (c *RunCmd) SetInput(r io.Reader) { c.in = r }

// SetClock replaces the wall clock (for testing).
func (c *RunCmd) SetClock(clock debounce.Clock) { c.clock = clock }

// SetWait sets the --wait flag (for testing).
func (c *RunCmd) SetWait(wait bool) { c.wait = wait }

func (c *RunCmd) Name() string      { return "run" }
func (c *RunCmd) Aliases() []string { return nil }
func (c *RunCmd) Synopsis() string  { return "Add tasks read from stdin" }
func (c *RunCmd) Usage() string     { return "taskapp run [--wait]" }
func (c *RunCmd) NeedsAuth() bool   { return false }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.wait, "wait", false, "")
}

func (c *RunCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}

	app := newApp(cfg, errOut, c.clock)
	defer app.Close()

	// Earlier lines are already on screen; render only the appended task.
	app.OnChange(func(tasks []task.Task) {
		if n := len(tasks); n > 0 {
			output.FormatTask(out, n, tasks[n-1])
		}
	})

	lines, errc := readLines(ctx, in)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					fmt.Fprintf(errOut, "error: reading input: %v\n", err)
					return exitcode.UserError
				}
				if c.wait {
					// An interrupt while waiting is a normal teardown.
					_ = app.Wait(ctx)
				}
				return exitcode.Success
			}
			app.AddTask(task.New(line))
		case <-ctx.Done():
			return exitcode.Success
		}
	}
}

// readLines streams the non-blank, trimmed lines of r.
// The error channel yields the scanner error once lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
