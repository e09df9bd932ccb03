package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

const defaultCacheTTL = 24 * time.Hour

// GeocodeCache is a read-through cache for geocoding results backed by Redis.
// Key format: geocode:<lowercased place name>
type GeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGeocodeCache creates a GeocodeCache wrapping the given Redis client.
// A non-positive ttl falls back to 24h.
func NewGeocodeCache(client *redis.Client, ttl time.Duration) *GeocodeCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &GeocodeCache{client: client, ttl: ttl}
}

// Get returns the cached coordinates for a place name, or (nil, nil) on miss.
func (c *GeocodeCache) Get(ctx context.Context, name string) (*domain.Coordinates, error) {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("geocode cache get: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("geocode cache decode: %w", err)
	}
	return &coords, nil
}

// Set stores the coordinates for a place name (expires after the cache TTL).
func (c *GeocodeCache) Set(ctx context.Context, name string, coords domain.Coordinates) error {
	data, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("geocode cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(name), data, c.ttl).Err()
}

func (c *GeocodeCache) key(name string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(name))
}
