package cache

import (
	"context"
	"errors"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Redis adapts a redis client to the Store contract for deployments that
// want the cache to survive restarts. Backend errors are logged and folded
// into misses.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Has(ctx context.Context, key string) bool {
	n, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking cache key %s", key)
		return false
	}
	return n > 0
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	v, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error getting cache key %s", key)
		}
		return nil, false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	// No TTL: entries live until the next invalidation.
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error setting cache key %s", key)
	}
}

func (r *Redis) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error deleting cache keys")
	}
}
