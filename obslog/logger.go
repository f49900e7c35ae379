package obslog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joeycumines/logiface"
	logifaceslog "github.com/joeycumines/logiface-slog"
)

// Logger is the fixed-arity logging interface used throughout this module.
// kv must alternate string keys and values; an odd-length kv logs a single
// "!BADKEY" field rather than panicking.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type logifaceLogger struct {
	l *logiface.Logger[*logifaceslog.Event]
}

// New wraps an slog.Handler as a Logger via logiface-slog.
func New(handler slog.Handler) Logger {
	return &logifaceLogger{l: logiface.New[*logifaceslog.Event](logifaceslog.NewLogger(handler))}
}

// NewJSON is a convenience constructor writing JSON records to w at the
// given minimum level.
func NewJSON(w *os.File, level slog.Level) Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func (l *logifaceLogger) Debug(msg string, kv ...any) { log(l.l.Debug(), msg, kv) }
func (l *logifaceLogger) Info(msg string, kv ...any)  { log(l.l.Info(), msg, kv) }
func (l *logifaceLogger) Warn(msg string, kv ...any)  { log(l.l.Warning(), msg, kv) }
func (l *logifaceLogger) Error(msg string, kv ...any) { log(l.l.Err(), msg, kv) }

func log(b *logiface.Builder[*logifaceslog.Event], msg string, kv []any) {
	if len(kv)%2 != 0 {
		b = b.Str("!BADKEY", fmt.Sprint(kv))
		b.Log(msg)
		return
	}
	for i := 0; i < len(kv); i += 2 {
		key, _ := kv[i].(string)
		b = b.Any(key, kv[i+1])
	}
	b.Log(msg)
}

type noop struct{}

// Noop returns a Logger that discards everything, the default for a Solver
// that was not given WithLogger.
func Noop() Logger { return noop{} }

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}
