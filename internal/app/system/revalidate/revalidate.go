// internal/app/system/revalidate/revalidate.go
//
// Package revalidate invalidates the rendered-page cache after a mutation.
// The UI layer caches rendered pages in Redis under "page:<path>"; deleting
// the key forces the next request to re-render. Invalidation is
// fire-and-forget: a cache miss is always safe, so failures are logged and
// never propagated to the mutation's own result.
package revalidate

import (
	"context"

	"github.com/loomfeed/loomfeed/internal/app/system/timeouts"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "page:"

// Cache invalidates cached pages by path. A nil *Cache or a Cache built
// without a Redis client is a no-op, so callers never need to branch on
// whether caching is enabled.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

// New returns a Cache over the given Redis client. rdb may be nil when the
// deployment runs without a page cache.
func New(rdb *redis.Client, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, log: log}
}

// Invalidate drops the cached page for path. Errors are logged at warn and
// swallowed.
func (c *Cache) Invalidate(ctx context.Context, path string) {
	if c == nil || c.rdb == nil || path == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := c.rdb.Del(ctx, keyPrefix+path).Err(); err != nil {
		c.log.Warn("page cache invalidation failed",
			zap.String("path", path),
			zap.Error(err))
	}
}
