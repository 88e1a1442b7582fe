package shopapi

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts zerolog to the Logger interface the client emits to.
type ZeroLogger struct {
	log zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// NewLogger creates a zerolog-backed Logger writing to stderr. When pretty is
// true output is console-formatted for humans. Unparseable levels fall back
// to info.
func NewLogger(level string, pretty bool) *ZeroLogger {
	var l zerolog.Logger
	if pretty {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	zLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zLevel = zerolog.InfoLevel
	}
	return &ZeroLogger{log: l.Level(zLevel)}
}

// WrapZerolog adapts an existing zerolog.Logger, so applications that already
// carry one can route client diagnostics through it.
func WrapZerolog(l zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{log: l}
}

func (l *ZeroLogger) Debug(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, keysAndValues ...any) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, keysAndValues ...any) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, keysAndValues ...any) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}
