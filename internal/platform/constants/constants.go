// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, browsing budgets, rate limits, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Browsing: Result caps and fetch budgets for reconciliation.
  - Rate Limiting: Burst capacities and IP tracking TTLs.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "artscope"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is zero so that the session event stream is not cut off;
	// plain handlers are bounded by GlobalRequestTimeout instead.
	DefaultWriteTimeout = 0

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for a non-streaming request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// EventKeepAliveInterval is how often an idle event stream receives a comment line.
	EventKeepAliveInterval = 15 * time.Second
)

// # Browsing

const (
	// BrowseResultCap is the maximum number of artworks committed on the filtered path.
	BrowseResultCap = 25

	// BrowseFetchBudget is how many shuffled candidates the filtered path may fetch.
	BrowseFetchBudget = 100

	// SearchResultCap is the maximum number of artworks committed on the free-text path.
	SearchResultCap = 12

	// SearchFetchBudget is how many shuffled candidates the free-text path may fetch.
	SearchFetchBudget = 30

	// MaxMediumTerms bounds how many medium terms are OR-ed into one upstream query.
	MaxMediumTerms = 5

	// WildcardQuery is sent upstream when no medium term narrows the search.
	WildcardQuery = "*"

	// DefaultFetchDelay is the minimum spacing between two upstream object fetches.
	DefaultFetchDelay = 50 * time.Millisecond

	// DefaultUpstreamTimeout is the per-call deadline for the collection API.
	DefaultUpstreamTimeout = 10 * time.Second

	// MaxResponseBytes caps how much of an upstream body is read.
	MaxResponseBytes = 8 << 20

	// SessionCleanupInterval is how often idle browsing sessions are swept.
	SessionCleanupInterval = 1 * time.Minute
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderUserAgent     = "User-Agent"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixObject = "collection:object:"
)
