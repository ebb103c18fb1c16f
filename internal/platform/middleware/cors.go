// Copyright (c) 2026 ArtScope. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/jenna9192/artscope/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

// AppConfig is the part of the configuration CORS needs.
type AppConfig interface {
	IsDevelopment() bool
	AllowedOrigins() []string
}

const (
	corsAllowMethods  = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders  = "Accept, Content-Type, Content-Length, Last-Event-ID, X-Request-ID"
	corsExposeHeaders = "Content-Length, X-Request-ID"
)

// CORS admits any origin in development and origins ending in one of
// AllowedOrigins otherwise. Preflight requests are answered here.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	suffixes := cfg.AllowedOrigins()
	development := cfg.IsDevelopment()

	allowed := func(origin string) bool {
		if development {
			return true
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(origin, suffix) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if allowed(origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", corsAllowMethods)
				header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				header.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", constants.HeaderOrigin)
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
