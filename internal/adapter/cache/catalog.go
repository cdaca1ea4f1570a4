// Package cache provides the optional Redis-backed catalog cache.
// A CatalogCache built without an address is a no-op: every Get misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/heartmarshall/signdeck-backend/internal/config"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

const catalogKey = "signdeck:catalog:v1"

// CatalogCache caches the unfiltered card catalog.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a CatalogCache from config. It does not connect eagerly.
func New(cfg config.CacheConfig) *CatalogCache {
	if !cfg.Enabled() {
		return &CatalogCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &CatalogCache{client: client, ttl: cfg.CatalogTTL}
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis client is configured.
func (c *CatalogCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached catalog. ok is false on a miss.
func (c *CatalogCache) Get(ctx context.Context) (cards []domain.Card, ok bool, err error) {
	if !c.Enabled() {
		return nil, false, nil
	}

	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.Get: %w", err)
	}

	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, false, fmt.Errorf("cache.Get: decode: %w", err)
	}
	return cards, true, nil
}

// Set stores the catalog with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, cards []domain.Card) error {
	if !c.Enabled() {
		return nil
	}

	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("cache.Set: encode: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog. Called after seeding.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}
	return nil
}

// Ping checks the Redis connection. A disabled cache is always healthy.
func (c *CatalogCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *CatalogCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
