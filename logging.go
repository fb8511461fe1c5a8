// logging.go - zerolog setup, grounded on the teacher's main.go logging
// bootstrap (console writer, configurable level, timestamped output).

package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// configureLogging installs a human-readable console writer at the given
// level ("debug", "info", "warn", "error", or any other name zerolog
// parses; a name it cannot parse falls back to "info") as the global
// zerolog logger.
func configureLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
