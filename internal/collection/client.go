// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package collection is the client for the remote museum collection API.

The API is treated as an opaque HTTP JSON service with three endpoints:

  - GET /departments
  - GET /search
  - GET /objects/{id}

Every call carries its own deadline and aborts as soon as the caller's context is
cancelled. Object records may be served from an optional read-through cache.
*/
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jenna9192/artscope/internal/platform/constants"
)

// ErrNotFound is returned when the upstream has no object with the requested id.
var ErrNotFound = errors.New("collection: object not found")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("collection: %s answered HTTP %d", e.Path, e.StatusCode)
}

// # Client

// Options configures a [Client]. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Cache      ObjectCache
	Logger     *slog.Logger
}

// Client talks to the collection API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	cache      ObjectCache
	logger     *slog.Logger

	// The department directory never changes at runtime; it is fetched once
	// and concurrent first callers share a single request.
	group       singleflight.Group
	mu          sync.RWMutex
	departments []Department
}

// NewClient constructs a [Client] from options.
func NewClient(options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultUpstreamTimeout
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
		timeout:    timeout,
		userAgent:  options.UserAgent,
		httpClient: httpClient,
		cache:      options.Cache,
		logger:     logger.With(slog.String("component", "collection")),
	}
}

// # Departments

// Departments returns the upstream department directory.
func (client *Client) Departments(ctx context.Context) ([]Department, error) {
	client.mu.RLock()
	cached := client.departments
	client.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	// The shared load outlives any single caller; getJSON still bounds it
	// with the client timeout.
	shared := context.WithoutCancel(ctx)
	results := client.group.DoChan("departments", func() (any, error) {
		var response departmentsResponse
		if err := client.getJSON(shared, "/departments", nil, &response); err != nil {
			return nil, err
		}

		client.mu.Lock()
		client.departments = response.Departments
		client.mu.Unlock()

		client.logger.Info("departments_loaded", slog.Int("count", len(response.Departments)))
		return response.Departments, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.([]Department), nil
	}
}

// DepartmentID maps a department display name to its upstream id.
func (client *Client) DepartmentID(ctx context.Context, name string) (int, bool, error) {
	departments, err := client.Departments(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, department := range departments {
		if department.DisplayName == name {
			return department.DepartmentID, true, nil
		}
	}
	return 0, false, nil
}

// Ping performs an uncached departments request to verify the upstream answers.
func (client *Client) Ping(ctx context.Context) error {
	var response departmentsResponse
	return client.getJSON(ctx, "/departments", nil, &response)
}

// # Search

// Search returns the candidate object ids for params. A null id list is empty.
func (client *Client) Search(ctx context.Context, params SearchParams) ([]int, error) {
	var response searchResponse
	if err := client.getJSON(ctx, "/search", params.Values(), &response); err != nil {
		return nil, err
	}

	client.logger.Debug("search_completed",
		slog.String("q", params.Query),
		slog.Int("total", response.Total),
		slog.Int("ids", len(response.ObjectIDs)),
	)
	return response.ObjectIDs, nil
}

// # Objects

// Object returns the full record for id, consulting the cache first. Cache
// failures are logged and never fail the call.
func (client *Client) Object(ctx context.Context, id int) (*Artwork, error) {
	if client.cache != nil {
		artwork, found, err := client.cache.Get(ctx, id)
		switch {
		case err != nil:
			client.logger.Warn("object_cache_get_failed", slog.Int("object_id", id), slog.Any("error", err))
		case found:
			return artwork, nil
		}
	}

	var artwork Artwork
	if err := client.getJSON(ctx, "/objects/"+strconv.Itoa(id), nil, &artwork); err != nil {
		return nil, err
	}
	if artwork.ObjectID == 0 {
		return nil, ErrNotFound
	}

	if client.cache != nil {
		if err := client.cache.Set(ctx, &artwork); err != nil {
			client.logger.Warn("object_cache_set_failed", slog.Int("object_id", id), slog.Any("error", err))
		}
	}

	return &artwork, nil
}

// # Transport

func (client *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("collection: build request %s: %w", path, err)
	}
	request.Header.Set("Accept", "application/json")
	if client.userAgent != "" {
		request.Header.Set(constants.HeaderUserAgent, client.userAgent)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("collection: GET %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/objects/") {
		return ErrNotFound
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &StatusError{Path: path, StatusCode: response.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(response.Body, constants.MaxResponseBytes)).Decode(target); err != nil {
		return fmt.Errorf("collection: decode %s: %w", path, err)
	}
	return nil
}
