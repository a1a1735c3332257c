// Package logging builds the logrus logger shared by the CLI and the checks.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config controls logger construction.
type Config struct {
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
	Output  io.Writer
}

// New returns a text logger for cfg. Diagnostics go to cfg.Output, which
// should be stderr so they never mix with check output.
func New(cfg Config) (*logrus.Logger, error) {
	level := logrus.WarnLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	if cfg.Verbose {
		level = logrus.DebugLevel
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
