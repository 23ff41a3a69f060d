// Package cache holds the optional Redis read-through cache for people.
// People are immutable once created, so an entry can only expire, never go stale.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/people-registry/internal/domain"
)

// Redis key prefix for cached people.
const personKeyPrefix = "people:id:"

// PersonCache is a Redis-backed cache of people keyed by ID.
type PersonCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPersonCache constructs a PersonCache. A ttl of zero keeps entries
// until Redis evicts them.
func NewPersonCache(client *redis.Client, ttl time.Duration) *PersonCache {
	return &PersonCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache.Connect: parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache.Connect: ping: %w", err)
	}
	return client, nil
}

// Get returns the cached person for id. found is false on a cache miss.
func (c *PersonCache) Get(ctx context.Context, id uuid.UUID) (p domain.Person, found bool, err error) {
	raw, err := c.client.Get(ctx, personKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Person{}, false, nil
	}
	if err != nil {
		return domain.Person{}, false, fmt.Errorf("cache.PersonCache.Get: %w", err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Person{}, false, fmt.Errorf("cache.PersonCache.Get: decode: %w", err)
	}
	return p, true, nil
}

// Set stores p under its ID.
func (c *PersonCache) Set(ctx context.Context, p domain.Person) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache.PersonCache.Set: encode: %w", err)
	}
	if err := c.client.Set(ctx, personKey(p.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.PersonCache.Set: %w", err)
	}
	return nil
}

func personKey(id uuid.UUID) string {
	return personKeyPrefix + id.String()
}
