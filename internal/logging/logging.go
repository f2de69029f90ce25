// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level and output. Dev mode writes human-readable
// console lines; otherwise each line is a JSON object with a timestamp.
// An unknown level falls back to info.
func Setup(level string, dev bool, version string) zerolog.Logger {
	return SetupWriter(os.Stderr, level, dev, version)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string, dev bool, version string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if dev {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		log.Logger = zerolog.New(w).With().
			Timestamp().
			Str("service", "hive").
			Str("version", version).
			Logger()
	}
	return log.Logger
}
