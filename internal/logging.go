package internal

import (
	"os"

	"github.com/rs/zerolog"
)

// Logging goes to stderr: when the MCP server runs over stdio, stdout
// belongs to the protocol.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLevel adjusts the global log level ("debug", "info", "warn", ...).
// Unknown levels are ignored.
func SetLevel(level string) {
	if level == "" {
		return
	}
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
}

// Log returns the base logger.
func Log() zerolog.Logger {
	return logger
}

// Component returns a child logger annotated with a component name.
func Component(name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
