package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Output goes to stderr so that
// command output on stdout stays machine readable.
func Setup(debug, jsonOutput bool) zerolog.Logger {
	return setup(os.Stderr, debug, jsonOutput)
}

func setup(w io.Writer, debug, jsonOutput bool) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
	return log.Logger
}
