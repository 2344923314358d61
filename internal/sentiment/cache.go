package sentiment

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is how long cached scores live when no TTL is given.
const DefaultCacheTTL = 24 * time.Hour

// Cached wraps a Scorer and keeps its results in Redis. Scores are
// deterministic, so a cached value is always valid until it expires.
// Redis failures are logged and fall through to the wrapped scorer.
type Cached struct {
	next Scorer
	rdb  goredis.Cmdable
	ttl  time.Duration
}

// NewCached creates a Redis-backed caching scorer.
func NewCached(next Scorer, rdb goredis.Cmdable, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

// Score implements Scorer.
func (c *Cached) Score(ctx context.Context, text string) (Scores, error) {
	key := cacheKey(text)

	if s, ok := c.getCached(ctx, key); ok {
		return s, nil
	}

	s, err := c.next.Score(ctx, text)
	if err != nil {
		return Scores{}, err
	}

	c.writeCache(ctx, key, s)
	return s, nil
}

func (c *Cached) getCached(ctx context.Context, key string) (Scores, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.Warn("Redis sentiment cache GET failed", "key", key, "error", err)
		}
		return Scores{}, false
	}

	var s Scores
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("Failed to unmarshal cached sentiment", "key", key, "error", err)
		return Scores{}, false
	}
	return s, true
}

func (c *Cached) writeCache(ctx context.Context, key string, s Scores) {
	encoded, err := json.Marshal(s)
	if err != nil {
		slog.Warn("Failed to marshal sentiment for Redis cache", "key", key, "error", err)
		return
	}

	if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		slog.Warn("Failed to populate Redis sentiment cache", "key", key, "error", err)
	}
}

func cacheKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return "sentiment:" + hex.EncodeToString(sum[:])
}

// NewRedisClient connects to Redis at addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			slog.Warn("closing redis client", "error", cerr)
		}
		return nil, err
	}
	return client, nil
}
