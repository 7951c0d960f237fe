package fetch

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// defaultPageTTL keeps fetched pages around long enough to resume an
// interrupted season run without re-hitting the site. Finished boxscores
// never change.
const defaultPageTTL = 24 * time.Hour

// PageCache stores fetched markup in Redis keyed by URL, so a re-run of a
// partially completed week serves pages locally instead of burning the rate
// limit again.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewPageCache connects to Redis and verifies the connection.
func NewPageCache(redisURL string, log *zap.Logger) (*PageCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &PageCache{client: client, ttl: defaultPageTTL, log: log}, nil
}

// Get returns the cached markup for a URL, if present. Cache errors are
// treated as misses; the cache is an optimization, never a dependency.
func (c *PageCache) Get(ctx context.Context, url string) (string, bool) {
	html, err := c.client.Get(ctx, cacheKey(url)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("page cache read failed", zap.String("url", url), zap.Error(err))
		}
		return "", false
	}
	return html, true
}

// Put stores the markup for a URL with the configured TTL.
func (c *PageCache) Put(ctx context.Context, url, html string) {
	if err := c.client.Set(ctx, cacheKey(url), html, c.ttl).Err(); err != nil {
		c.log.Warn("page cache write failed", zap.String("url", url), zap.Error(err))
	}
}

// Close closes the Redis connection.
func (c *PageCache) Close() error {
	return c.client.Close()
}

func cacheKey(url string) string {
	return "page:" + url
}
