package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger for the storefront. Development gets
// a human-readable console writer at debug level; everything else emits
// JSON at info level.
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// Info logs a storefront event with structured fields.
func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

// Error logs a failure. Remote service errors land here with their
// message intact; the user-facing copy is rendered elsewhere.
func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
