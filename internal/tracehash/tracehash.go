// Package tracehash adapts zerolog into sum.Logger, giving the CLI a
// -v/--verbose path for per-chunk and per-stage diagnostics without
// coupling the sum package to a concrete logging library.
package tracehash

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger implements sum.Logger on top of a zerolog.Logger.
type Logger struct {
	log zerolog.Logger
}

// New builds a Logger writing human-readable output to w at the given
// level. Passing zerolog.Disabled silences Debugf entirely.
func New(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	return &Logger{log: zerolog.New(console).Level(level).With().Timestamp().Logger()}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}
