package dataset

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "dataset:historical"

var _ Loader = (*CachedLoader)(nil)

// CachedLoader wraps a Loader with Redis caching of the dataset document, so
// per-request loads do not hit the origin source every time. The cached bytes
// are replaced atomically on refresh; requests always see a full snapshot.
type CachedLoader struct {
	origin Loader
	cache  *redis.Client
	ttl    time.Duration
}

// NewCachedLoader creates a caching decorator around the given origin loader.
func NewCachedLoader(origin Loader, cache *redis.Client, ttl time.Duration) *CachedLoader {
	return &CachedLoader{
		origin: origin,
		cache:  cache,
		ttl:    ttl,
	}
}

// Load attempts to serve the dataset from cache before calling the origin.
// A corrupt cached document falls through to the origin.
func (l *CachedLoader) Load(ctx context.Context) (*Dataset, error) {
	if l.cache == nil {
		return l.origin.Load(ctx)
	}

	raw, err := l.cache.Get(ctx, cacheKey).Bytes()
	if err == nil {
		if ds, perr := Parse(raw); perr == nil {
			return ds, nil
		}
	}

	return l.loadAndPrime(ctx)
}

// Refresh bypasses the cache, reloads the origin, and rewrites the cached
// document.
func (l *CachedLoader) Refresh(ctx context.Context) error {
	_, err := l.loadAndPrime(ctx)
	return err
}

func (l *CachedLoader) loadAndPrime(ctx context.Context) (*Dataset, error) {
	ds, err := l.origin.Load(ctx)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if raw, merr := json.Marshal(ds); merr == nil {
			_ = l.cache.Set(ctx, cacheKey, raw, l.ttl).Err()
		}
	}
	return ds, nil
}
