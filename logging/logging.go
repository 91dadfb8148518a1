package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/runabol/froytools/env"
)

// Setup configures the global logger from LOG_LEVEL and LOG_FORMAT.
func Setup() error {
	return SetupFrom(env.OSStore{}, os.Stderr)
}

// SetupFrom is Setup reading its settings from s and writing to out.
func SetupFrom(s env.Store, out io.Writer) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := env.GetFrom(s, "LOG_LEVEL", "debug")
	logLevel := strings.ToLower(level)
	// setup log level
	switch logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return errors.Errorf("invalid logging level: %s", logLevel)
	}
	// setup log format (pretty / json)
	format := env.GetFrom(s, "LOG_FORMAT", "pretty")
	logFormat := strings.ToLower(format)
	switch logFormat {
	case "pretty":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}).With().Timestamp().Logger()
	case "json":
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	default:
		return errors.Errorf("invalid logging format: %s", logFormat)
	}
	return nil
}
