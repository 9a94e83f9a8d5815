// Package logging configures the process-wide zerolog logger and provides
// the gin middlewares that tag every request with an id and log its outcome.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Development gets human-readable
// console output; every other environment logs JSON to stdout.
func Setup(environment, level string) {
	SetupWriter(os.Stdout, environment, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, environment, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if strings.EqualFold(environment, "development") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(ParseLevel(level))
}

// ParseLevel falls back to info for empty or unknown level names.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
