package observability

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger for the given app environment.
// APP_ENV=dev (or development) uses a human-friendly console writer;
// anything else logs JSON.
func NewLogger(env string) zerolog.Logger {
	switch strings.ToLower(env) {
	case "dev", "development":
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	default:
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
