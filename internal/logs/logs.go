// Package logs configures the zerolog logger shared by the desktop app and the CLI.
package logs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how diagnostics are written
type Config struct {
	Service string    // value of the "svc" field, e.g. "desktop" or "cli"
	Level   string    // debug|info|warn|error
	Format  string    // console|json
	Out     io.Writer // defaults to os.Stderr
}

// DefaultConfig returns console output at info level
func DefaultConfig(service string) Config {
	return Config{
		Service: service,
		Level:   "info",
		Format:  FormatConsole,
	}
}

// Setup configures the global zerolog logger and returns it
func Setup(c Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || c.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	if strings.ToLower(c.Format) == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("svc", c.Service).
		Logger()

	log.Logger = logger
	return logger
}
