package establishment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogKeyPrefix = "catalog:"

// Cache keeps per-city JSON snapshots of the active catalog in Redis.
// It is an optimization only: a miss or a Redis failure falls back to
// the repository, never to a request failure.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

func catalogKey(city string) string {
	if city == "" {
		return catalogKeyPrefix + "all"
	}
	return catalogKeyPrefix + strings.ToLower(city)
}

// Get returns the cached snapshot for a city, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, city string) ([]*Establishment, error) {
	data, err := c.Client.Get(ctx, catalogKey(city)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var establishments []*Establishment
	if err := json.Unmarshal(data, &establishments); err != nil {
		return nil, err
	}
	return establishments, nil
}

func (c *Cache) Set(ctx context.Context, city string, establishments []*Establishment) error {
	data, err := json.Marshal(establishments)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey(city), data, c.TTL).Err()
}

// Invalidate drops the snapshot for a city together with the all-cities
// snapshot, which contains the same rows.
func (c *Cache) Invalidate(ctx context.Context, city string) error {
	return c.Client.Del(ctx, catalogKey(city), catalogKey("")).Err()
}
