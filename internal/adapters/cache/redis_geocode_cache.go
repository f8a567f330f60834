package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"visit-route-service/internal/domain"
)

// RedisGeocodeCache stores resolved display addresses keyed by coordinates,
// so repeat waypoints skip the external reverse-geocode call.
type RedisGeocodeCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisGeocodeCache(addr, password string, db int) (*RedisGeocodeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisGeocodeCache{
		client: client,
		prefix: "geocode:",
		ttl:    24 * time.Hour,
	}, nil
}

func (c *RedisGeocodeCache) Close() error {
	return c.client.Close()
}

func (c *RedisGeocodeCache) key(coord domain.Coordinates) string {
	// Five decimal places (~1 m) keeps near-identical GPS pings on one key.
	return fmt.Sprintf("%s%.5f,%.5f", c.prefix, coord.Lat, coord.Lng)
}

// Get returns the cached address, or "" on a miss.
func (c *RedisGeocodeCache) Get(ctx context.Context, coord domain.Coordinates) (string, error) {
	val, err := c.client.Get(ctx, c.key(coord)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("geocode cache get: %w", err)
	}
	return val, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, coord domain.Coordinates, address string) error {
	if err := c.client.Set(ctx, c.key(coord), address, c.ttl).Err(); err != nil {
		return fmt.Errorf("geocode cache put: %w", err)
	}
	return nil
}
