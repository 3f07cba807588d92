package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/places-api/internal/logger"
)

// RateLimitRepository counts requests per key in fixed windows stored in Redis
type RateLimitRepository struct {
	client *redis.Client
	window time.Duration
}

// NewRateLimitRepository creates a new repository counting hits over the given window
func NewRateLimitRepository(client *redis.Client, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		window: window,
	}
}

// Hit increments the counter of key and returns the count within the current window
// and the time left until the window resets.
func (r *RateLimitRepository) Hit(ctx context.Context, key string) (int64, time.Duration, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX keeps the expiry of an already running window
	pipe.ExpireNX(ctx, redisKey, r.window)
	ttl := pipe.TTL(ctx, redisKey)
	_, err := pipe.Exec(ctx)

	logger.Log.Infow("redis",
		"key", redisKey,
		"result", incr.Val(),
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}

	left := ttl.Val()
	if left < 0 {
		left = r.window
	}
	return incr.Val(), left, nil
}
