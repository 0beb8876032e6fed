package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type ctxKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the id stored by WithRequestID, or "unknown".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(ctxKey{}).(string); ok && rid != "" {
		return rid
	}
	return "unknown"
}

// Logger provides request-scoped logging for services
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	return &Logger{log: slog.Default().With("request_id", RequestID(ctx))}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.log.Error("operation failed", "operation", operation, "error", err)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...), "operation", operation)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...), "operation", operation)
}
