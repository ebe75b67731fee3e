// Package log configures the zerolog logger used by the command line tool.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config captures options for the base logger.
type Config struct {
	Level  string    // "debug", "info", ...; defaults to info
	Output io.Writer // defaults to os.Stderr
	JSON   bool      // structured output instead of the console writer
}

// New builds a logger from cfg. An unknown level is reported as an error
// and the logger falls back to info.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	var levelErr error
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			levelErr = err
		} else {
			level = parsed
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), levelErr
}
