// Copyright (c) 2026 ArtScope. All rights reserved.

// Package ctxkey holds the unexported-type keys for request-scoped context
// values; ctxutil is the only intended reader and writer.
package ctxkey

type key string

const (
	// KeyRequestID carries the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger carries the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
