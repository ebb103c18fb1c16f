// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package middleware provides the HTTP chain that wraps every ArtScope route.

Order matters and is fixed in api.NewServer:

  - RequestID: correlation ID in the context and the response header.
  - StructuredLogger: per-request slog logger and one access log line.
  - RateLimit: per-IP token bucket.
  - PanicRecovery: turns a panic into a 500 envelope.
  - CORS: origin allow-list for the browsing frontend.

Every wrapper keeps [http.Flusher] reachable so that the session event
stream can flush through the chain.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/internal/platform/ctxutil"
	"github.com/jenna9192/artscope/pkg/uuid"
)

// # Request Tracing

// RequestID reuses the caller's X-Request-ID or mints a time-ordered one.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// maxRequestIDLength keeps client-supplied IDs from bloating every log line.
const maxRequestIDLength = 128

// # Middleware Helpers

// RealIP extracts the client IP, preferring proxy headers over RemoteAddr.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// isEventStream reports whether the client asked for server-sent events.
func isEventStream(request *http.Request) bool {
	return strings.Contains(request.Header.Get("Accept"), "text/event-stream")
}
