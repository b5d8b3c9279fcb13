package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the gateway's root logger: JSON to stdout for production,
// a human-friendly console writer when APP_ENV is dev (or development).
func NewLogger(env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
