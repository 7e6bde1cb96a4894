package cache

import (
	"context"
	"time"
)

// Cache stores encoded query results for a bounded time. A miss is reported
// with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Flush(ctx context.Context) error
}
