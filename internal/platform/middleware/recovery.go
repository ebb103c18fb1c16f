// Copyright (c) 2026 ArtScope. All rights reserved.

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	"github.com/jenna9192/artscope/internal/platform/ctxutil"
	"github.com/jenna9192/artscope/internal/platform/respond"
)

// # Reliability & Safety

// PanicRecovery logs the stack of a panicking handler and answers 500.
// [http.ErrAbortHandler] is re-raised so net/http can drop the connection.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				ctxutil.LoggerOr(request.Context(), logger).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(stack)),
				)

				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}
