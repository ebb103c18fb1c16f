// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (collection client, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the ArtScope server and CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Upstream collection API
	CollectionBaseURL string        `env:"COLLECTION_BASE_URL" envDefault:"https://collectionapi.metmuseum.org/public/collection/v1"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT"    envDefault:"10s"`
	FetchDelay        time.Duration `env:"FETCH_DELAY"         envDefault:"50ms"`
	UserAgent         string        `env:"USER_AGENT"          envDefault:"artscope/0.1 (+collection browser)"`

	// Key-Value Cache (Redis). Caching is disabled when empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`

	// SessionTTL is how long an idle browsing session is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Cross-Origin Resource Sharing, comma separated origin suffixes.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("config: UPSTREAM_TIMEOUT must be positive, got %s", cfg.UpstreamTimeout)
	}
	if cfg.FetchDelay < 0 {
		return nil, fmt.Errorf("config: FETCH_DELAY must not be negative, got %s", cfg.FetchDelay)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// AllowedOrigins splits ExtraOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
