package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/quietseason/internal/venue"
)

// DefaultTTL is used when NewVenueCache is given a non-positive TTL.
const DefaultTTL = 10 * time.Minute

// VenueCache stores raw provider venue results in Redis, keyed by city.
type VenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVenueCache constructs a VenueCache whose entries expire after ttl.
func NewVenueCache(client *redis.Client, ttl time.Duration) *VenueCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &VenueCache{client: client, ttl: ttl}
}

// key returns the Redis key for the given city.
func key(city string) string {
	return "venues:" + strings.ToLower(strings.TrimSpace(city))
}

// Get retrieves cached venues for city.
// Returns nil, nil on a cache miss (not an error).
func (c *VenueCache) Get(ctx context.Context, city string) ([]venue.Venue, error) {
	val, err := c.client.Get(ctx, key(city)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for city %s: %w", city, err)
	}

	var venues []venue.Venue
	if err := json.Unmarshal(val, &venues); err != nil {
		return nil, fmt.Errorf("unmarshaling cached venues for city %s: %w", city, err)
	}

	return venues, nil
}

// Set stores venues for city with the configured TTL. An empty slice is not stored.
func (c *VenueCache) Set(ctx context.Context, city string, venues []venue.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	b, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("marshaling venues for city %s: %w", city, err)
	}

	if err := c.client.Set(ctx, key(city), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for city %s: %w", city, err)
	}

	return nil
}
