package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var errNotFound = errors.New("cache: not found")

// GetOrLoadJSON caches the JSON encoding of load's result. Only hits are
// cached: a nil result comes back as (nil, nil) and leaves no entry, so a
// record created moments later is served immediately.
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	if c == nil {
		return load(ctx)
	}
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, errNotFound
		}
		return json.Marshal(v)
	})
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
