// Copyright (c) 2026 ArtScope. All rights reserved.

// Package ctxutil stores and retrieves request-scoped values carried in a
// [context.Context]: the correlation ID and the per-request logger that the
// middleware chain installs before any ArtScope handler runs.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/jenna9192/artscope/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID attaches the correlation ID of the current request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// RequestID returns the correlation ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// Logger returns the request-scoped logger, or [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	return LoggerOr(ctx, slog.Default())
}

// LoggerOr returns the request-scoped logger, or fallback when none is set.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
