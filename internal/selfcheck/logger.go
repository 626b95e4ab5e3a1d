package selfcheck

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/gocrt/internal/simd"
)

// Logger wraps slog.Logger with self-check specific context.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that writes JSON records to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithISA adds the kernel family to the logger.
func (l *Logger) WithISA(isa simd.ISA) *Logger {
	return &Logger{
		Logger: l.Logger.With("isa", isa.String()),
	}
}

// WithOp adds the operation name to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogCapabilities logs the detected CPU features and the selected family.
func (l *Logger) LogCapabilities(ctx context.Context, c Capabilities) {
	available := make([]string, len(c.Available))
	for i, isa := range c.Available {
		available[i] = isa.String()
	}
	l.InfoContext(ctx, "kernel selection",
		"active", c.Active.String(),
		"overridden", c.Overridden,
		"available", available,
		"chunk_width", c.ChunkWidth,
	)
}

// LogCheck logs the outcome of one verification pass. The family and
// operation come from WithISA and WithOp.
func (l *Logger) LogCheck(ctx context.Context, checks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "self-check failed",
			"checks", checks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "self-check passed",
			"checks", checks,
		)
	}
}

// LogThroughput logs one throughput measurement. The family and operation
// come from WithISA and WithOp.
func (l *Logger) LogThroughput(ctx context.Context, r Result) {
	l.InfoContext(ctx, "throughput",
		"workers", r.Workers,
		"bytes", r.Bytes,
		"duration", r.Duration.Round(time.Microsecond),
		"mib_per_sec", r.MiBPerSecond(),
	)
}
