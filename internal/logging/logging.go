// Package logging builds the structured logger used by commands.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable that sets the default log level.
const LevelEnv = "LOG_LEVEL"

// Options selects the log level. Debug wins over Quiet, both win over LOG_LEVEL.
type Options struct {
	Debug bool
	Quiet bool
}

// New creates a logger writing text records to w, tagged with the app name.
func New(w io.Writer, opts Options) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(level(opts))

	return logger.WithField("app", "taskapp")
}

func level(opts Options) logrus.Level {
	switch {
	case opts.Debug:
		return logrus.DebugLevel
	case opts.Quiet:
		return logrus.WarnLevel
	}
	if env := os.Getenv(LevelEnv); env != "" {
		if lvl, err := logrus.ParseLevel(env); err == nil {
			return lvl
		}
	}
	return logrus.InfoLevel
}
