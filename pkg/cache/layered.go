package cache

import (
	"context"
	"errors"
	"time"
)

// LayeredCache reads through a fast local layer before falling back to a
// shared remote layer. Writes go to both.
type LayeredCache struct {
	local  Service
	remote Service
}

// NewLayeredCache composes a local and a remote cache. The remote layer may
// be nil, in which case the layered cache degrades to local-only.
func NewLayeredCache(local, remote Service) *LayeredCache {
	return &LayeredCache{local: local, remote: remote}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := lc.local.Set(ctx, key, value, expiration); err != nil {
		return err
	}
	if lc.remote != nil {
		return lc.remote.Set(ctx, key, value, expiration)
	}
	return nil
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	err := lc.local.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) || lc.remote == nil {
		return err
	}

	if err := lc.remote.Get(ctx, key, dest); err != nil {
		return err
	}
	// Promote the remote hit so the next read stays local.
	_ = lc.local.Set(ctx, key, dest, 0)
	return nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	if err := lc.local.Delete(ctx, keys...); err != nil {
		return err
	}
	if lc.remote != nil {
		return lc.remote.Delete(ctx, keys...)
	}
	return nil
}

func (lc *LayeredCache) Close() error {
	err := lc.local.Close()
	if lc.remote != nil {
		if rerr := lc.remote.Close(); err == nil {
			err = rerr
		}
	}
	return err
}
