// Package logging builds the service logger and carries request-scoped
// loggers through contexts.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// New returns a logger writing to stdout. See NewWithWriter.
func New(appName, env, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, appName, env, level)
}

// NewWithWriter emits JSON lines in production and human-readable console
// output elsewhere. Unknown or empty levels mean info.
func NewWithWriter(out io.Writer, appName, env, level string) zerolog.Logger {
	if env != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339Nano}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()
}

// IntoContext stores logger on ctx.
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, &logger)
}

// FromContext returns the logger stored by IntoContext, or a disabled logger.
// Like zerolog.Ctx it returns a pointer so event methods can be chained.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok {
			return logger
		}
	}
	nop := zerolog.Nop()
	return &nop
}
