// Copyright (c) 2026 ArtScope. All rights reserved.

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/api"
	"github.com/jenna9192/artscope/internal/browse"
	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/config"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = io.WriteString(writer, `{"departments":[{"departmentId":11,"displayName":"European Paintings"}]}`)
	}))
	t.Cleanup(upstream.Close)

	client := collection.NewClient(collection.Options{BaseURL: upstream.URL, Logger: discard()})
	catalog := taxonomy.DefaultCatalog()
	registry := browse.NewRegistry(browse.NewReconciler(client, browse.WithFetchDelay(0)), catalog, time.Minute, discard())
	t.Cleanup(registry.Close)

	liveness, readiness := api.NewHealthHandlers(deps, discard())
	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "development"}, discard(), api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Taxonomy:   taxonomy.NewHandler(catalog),
		Collection: collection.NewHandler(client),
		Browse:     browse.NewHandler(registry, catalog),
	})
	return server.Handler()
}

func call(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, target, nil)
	request.RemoteAddr = "192.0.2.1:1234"
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/taxonomies/periods", http.StatusOK},
		{http.MethodGet, "/api/v1/departments", http.StatusOK},
		{http.MethodPost, "/api/v1/sessions", http.StatusCreated},
		{http.MethodGet, "/api/v1/sessions/not-a-uuid", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/sessions/0190a5c0-0000-7000-8000-000000000000", http.StatusNotFound},
		{http.MethodGet, "/api/v1/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			recorder := call(handler, tt.method, tt.target)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		deps       api.HealthDependencies
		wantStatus int
		wantState  string
		wantChecks int
	}{
		{
			name:       "no_dependencies",
			wantStatus: http.StatusOK,
			wantState:  "ready",
		},
		{
			name: "all_healthy",
			deps: api.HealthDependencies{
				CheckCache:    func(ctx context.Context) error { return nil },
				CheckUpstream: func(ctx context.Context) error { return nil },
			},
			wantStatus: http.StatusOK,
			wantState:  "ready",
			wantChecks: 2,
		},
		{
			name: "upstream_down",
			deps: api.HealthDependencies{
				CheckUpstream: func(ctx context.Context) error { return errors.New("status 503") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "degraded",
			wantChecks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(tt.deps, discard())
			recorder := httptest.NewRecorder()
			readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

			require.Equal(t, tt.wantStatus, recorder.Code)

			var body struct {
				Data struct {
					Status string `json:"status"`
					Checks []struct {
						Name  string `json:"name"`
						OK    bool   `json:"ok"`
						Error string `json:"error"`
					} `json:"checks"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Data.Status)
			assert.Len(t, body.Data.Checks, tt.wantChecks)
		})
	}
}
