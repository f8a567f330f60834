package geocode

import (
	"context"
	"log"

	"visit-route-service/internal/adapters/cache"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// CachedReverseGeocoder decorates a ReverseGeocoder with a redis cache.
// Cache failures are logged and treated as misses; the cache never makes a
// lookup fail.
type CachedReverseGeocoder struct {
	inner ports.ReverseGeocoder
	cache *cache.RedisGeocodeCache
}

func NewCachedReverseGeocoder(inner ports.ReverseGeocoder, c *cache.RedisGeocodeCache) *CachedReverseGeocoder {
	return &CachedReverseGeocoder{inner: inner, cache: c}
}

func (g *CachedReverseGeocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinates) (string, error) {
	if addr, err := g.cache.Get(ctx, coord); err == nil && addr != "" {
		return addr, nil
	} else if err != nil {
		log.Printf("geocode cache read failed: %v", err)
	}

	addr, err := g.inner.ReverseGeocode(ctx, coord)
	if err != nil {
		return "", err
	}

	if addr != "" {
		if err := g.cache.Put(ctx, coord, addr); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return addr, nil
}
