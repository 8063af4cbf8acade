package layergo

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hupe1980/layergo/internal/simd"
)

// Logger wraps slog.Logger with layergo-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an op field naming the layer operation.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogPreconditionViolation logs a violated precondition right before the
// operation panics with err.
func (l *Logger) LogPreconditionViolation(ctx context.Context, err error) {
	l.ErrorContext(ctx, "precondition violated",
		"error", err,
	)
}

// LogKernels logs which float32 kernels are active.
func (l *Logger) LogKernels(ctx context.Context) {
	l.InfoContext(ctx, "float kernels selected",
		"kernels", simd.ActiveKernels().String(),
		"cpu", simd.DetectedISA().String(),
		"overridden", simd.IsOverridden(),
	)
}

var engineLogger atomic.Pointer[Logger]

func init() {
	engineLogger.Store(NoopLogger())
}

func logger() *Logger {
	return engineLogger.Load()
}
