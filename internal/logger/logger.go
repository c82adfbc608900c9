package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func sprintf(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}

var log *slog.Logger

// NewJSONHandler builds a JSON slog handler, exposed so tests can capture
// output in a buffer.
func NewJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, opts)
}

func New(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

func Init() {
	log = New(NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func ensure() *slog.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Info(msg string, args ...interface{}) {
	ensure().Info(msg, args...)
}

func Infof(format string, v ...interface{}) {
	ensure().Info(sprintf(format, v...))
}

func Error(msg string, args ...interface{}) {
	ensure().Error(msg, args...)
}

func Errorf(format string, v ...interface{}) {
	ensure().Error(sprintf(format, v...))
}

func Debug(msg string, args ...interface{}) {
	ensure().Debug(msg, args...)
}

func Debugf(format string, v ...interface{}) {
	ensure().Debug(sprintf(format, v...))
}

func Fatal(msg string) {
	ensure().Error(msg)
	os.Exit(1)
}

func Fatalf(format string, v ...interface{}) {
	ensure().Error(sprintf(format, v...))
	os.Exit(1)
}

// WithError returns a logger carrying the error as a structured field.
func WithError(err error) *slog.Logger {
	return ensure().With("error", err)
}

// WithFields returns a logger carrying the given fields.
func WithFields(fields map[string]interface{}) *slog.Logger {
	l := ensure()
	for k, v := range fields {
		l = l.With(k, v)
	}
	return l
}
