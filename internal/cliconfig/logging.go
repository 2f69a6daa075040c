package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns a console logger on w at the given level.
// An unparseable level falls back to DefaultLogLevel.
func Logger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl, _ = zerolog.ParseLevel(DefaultLogLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}
