package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup initializes the global zerolog logger based on environment configuration.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic)
//   - format: "json" for machine consumption, "pretty" for human-readable
//     output, or "" to pick pretty when stdout is a terminal
//
// Diagnostics go to stderr so they never interleave with the menu on stdout.
// Returns the configured logger instance.
func Setup(level, format string) zerolog.Logger {
	if format == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "pretty"
		} else {
			format = "json"
		}
	}

	var writer io.Writer
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(writer).
		With().
		Timestamp().
		Logger()

	return log
}
