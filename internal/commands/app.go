package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"taskapp/internal/config"
	"taskapp/internal/debounce"
	"taskapp/internal/logging"
	"taskapp/internal/taskapp"
)

// newLogger builds the command logger; records go to errOut.
func newLogger(cfg *config.Config, errOut io.Writer) *logrus.Entry {
	return logging.New(errOut, logging.Options{Debug: cfg.Debug, Quiet: cfg.Quiet})
}

// newApp creates the task app for a command. A nil clock means wall time.
// Callers must Close the app.
func newApp(cfg *config.Config, errOut io.Writer, clock debounce.Clock) *taskapp.App {
	return taskapp.New(
		taskapp.WithClock(clock),
		taskapp.WithLogger(newLogger(cfg, errOut)),
	)
}
