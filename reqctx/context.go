// Package reqctx carries request-scoped values through context.
package reqctx

import (
	"context"
	"log/slog"
)

// Context key type
type contextKey string

const (
	loggerKey   contextKey = "logger"
	clientIPKey contextKey = "client_ip"
)

// WithLogger adds a request-scoped logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger retrieves the request-scoped logger, falling back to slog.Default()
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithClientIP adds the resolved client IP to the context
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIP retrieves the client IP from the context
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
