// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package redis provides a managed client for volatile data storage.

It backs the read-through cache of upstream artwork records, so repeated browsing
of the same candidates does not hit the remote collection API again. Redis is
optional: without a URL the service runs uncached.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache traffic is small GET/SET pairs; short timeouts keep a slow Redis from
// stalling a reconciliation.
const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 500 * time.Millisecond
	writeTimeout = 500 * time.Millisecond
	pingTimeout  = 2 * time.Second
)

// Connect returns a client for redisURL, or nil when redisURL is empty.
func Connect(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	if redisURL == "" {
		logger.Info("redis_disabled")
		return nil, nil
	}
	return NewClient(context, redisURL, logger)
}

// NewClient parses a Redis URL and returns a client that answered a ping.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// One browsing run fetches sequentially, so a small pool covers many sessions.
	options.PoolSize = 8
	options.MinIdleConns = 1
	options.MaxIdleConns = 4

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
