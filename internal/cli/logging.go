package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// setupLogging points the global zerolog logger at w. Domain packages do
// not log; commands log what they read and write at debug level.
func setupLogging(w io.Writer, debug bool, format string) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	switch format {
	case logFormatConsole:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	case logFormatJSON:
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", format, logFormatConsole, logFormatJSON)
	}
	return nil
}
