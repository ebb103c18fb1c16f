// Copyright (c) 2026 ArtScope. All rights reserved.

package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jenna9192/artscope/internal/platform/constants"
)

// ObjectCache stores fetched artwork records. Get reports found=false on a miss.
type ObjectCache interface {
	Get(ctx context.Context, id int) (*Artwork, bool, error)
	Set(ctx context.Context, artwork *Artwork) error
}

// RedisObjectCache implements ObjectCache using Redis.
type RedisObjectCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisObjectCache creates a Redis-backed ObjectCache whose entries expire after ttl.
func NewRedisObjectCache(client *redis.Client, ttl time.Duration) *RedisObjectCache {
	return &RedisObjectCache{client: client, ttl: ttl}
}

func objectKey(id int) string {
	return constants.RedisPrefixObject + strconv.Itoa(id)
}

/*
Get retrieves a cached record.

Returns:
  - *Artwork: The decoded record, nil on a miss
  - bool: Whether the record was found
  - error: Connectivity or decoding errors
*/
func (cache *RedisObjectCache) Get(context context.Context, id int) (*Artwork, bool, error) {
	payload, err := cache.client.Get(context, objectKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_object_get_failed: %w", err)
	}

	var artwork Artwork
	if err := json.Unmarshal(payload, &artwork); err != nil {
		return nil, false, fmt.Errorf("redis_object_decode_failed: %w", err)
	}
	return &artwork, true, nil
}

// Set stores a record with the configured TTL.
func (cache *RedisObjectCache) Set(context context.Context, artwork *Artwork) error {
	payload, err := json.Marshal(artwork)
	if err != nil {
		return fmt.Errorf("redis_object_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, objectKey(artwork.ObjectID), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_object_set_failed: %w", err)
	}
	return nil
}
