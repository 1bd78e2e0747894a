// internal/search/interpreter/cache.go
package interpreter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"trimly-search/internal/common/database"
	"trimly-search/internal/common/logger"
)

// Cache stores recent interpretation results in Redis so identical query
// text within the TTL skips the model call. The interpreter gives no
// repeatability guarantee, so reusing the last structured result is a cost
// optimization, not a correctness requirement: every cache failure is
// non-fatal and simply falls through to a live call.
type Cache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		redis:  redis,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "interpretation-cache"}),
	}
}

// Get returns the cached result for the query, or ok=false on miss or error.
func (c *Cache) Get(ctx context.Context, query string) (*Result, bool) {
	payload, err := c.redis.Get(ctx, cacheKey(query))
	if err != nil {
		return nil, false
	}

	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		c.logger.Warn("discarding unreadable cache entry", map[string]interface{}{
			"error": err.Error(),
		})
		_ = c.redis.Del(ctx, cacheKey(query))
		return nil, false
	}

	return &result, true
}

// Put stores the result under the query's key. Errors are logged, not returned.
func (c *Cache) Put(ctx context.Context, query string, result *Result) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, cacheKey(query), string(payload), c.ttl); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// cacheKey hashes normalized query text so arbitrary user input never lands
// in a Redis key.
func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("search:interpretation:%s", hex.EncodeToString(sum[:]))
}
