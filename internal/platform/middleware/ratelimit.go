// Copyright (c) 2026 ArtScope. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/internal/platform/respond"
)

// # Rate Limiting

// retryAfterSeconds is advertised to throttled clients; one second refills
// the bucket well past a single request.
const retryAfterSeconds = 1

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP.
type visitors struct {
	mu      sync.Mutex
	entries map[string]*visitor
	limit   rate.Limit
	burst   int
}

func newVisitors(limit rate.Limit, burst int) *visitors {
	return &visitors{entries: make(map[string]*visitor), limit: limit, burst: burst}
}

// allow takes one token from ip's bucket, creating the bucket on first sight.
func (visitors *visitors) allow(ip string, now time.Time) bool {
	visitors.mu.Lock()
	defer visitors.mu.Unlock()

	entry, ok := visitors.entries[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(visitors.limit, visitors.burst)}
		visitors.entries[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for longer than ttl.
func (visitors *visitors) sweep(now time.Time, ttl time.Duration) {
	visitors.mu.Lock()
	defer visitors.mu.Unlock()

	for ip, entry := range visitors.entries {
		if now.Sub(entry.lastSeen) > ttl {
			delete(visitors.entries, ip)
		}
	}
}

// RateLimit limits requests per IP using a token bucket. Idle buckets are
// swept until context is cancelled.
//
// Opening an event stream costs one token like any other request; the stream
// itself is not metered.
func RateLimit(context context.Context) func(http.Handler) http.Handler {
	visitors := newVisitors(rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				visitors.sweep(now, constants.RateLimitClientTTL)
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !visitors.allow(RealIP(request), time.Now()) {
				writer.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
				respond.Error(writer, request, apperr.RateLimited(retryAfterSeconds))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
