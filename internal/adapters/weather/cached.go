package weather

import (
	"context"
	"strings"

	"trip_planner/internal/domain"
)

// Cached is a read-through wrapper: snapshots are served from the cache for
// the TTL, and unknown snapshots are never cached so a transient upstream
// failure does not pin "unavailable" for the full TTL. Cache failures degrade
// to a direct fetch.
type Cached struct {
	inner  domain.WeatherService
	cache  domain.Cache
	ttlSec int
}

func NewCached(inner domain.WeatherService, cache domain.Cache, ttlSec int) *Cached {
	return &Cached{inner: inner, cache: cache, ttlSec: ttlSec}
}

func key(city string) string { return "weather:" + strings.ToLower(city) }

func (c *Cached) Current(ctx context.Context, city string) domain.WeatherSnapshot {
	var snap domain.WeatherSnapshot
	if ok, err := c.cache.Get(ctx, key(city), &snap); err == nil && ok {
		return snap
	}
	snap = c.inner.Current(ctx, city)
	if snap.Known() {
		_ = c.cache.Set(ctx, key(city), snap, c.ttlSec)
	}
	return snap
}
