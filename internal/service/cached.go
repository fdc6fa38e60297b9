package service

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"shopmatic/internal/cache"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// readThrough returns the value cached under key, or loads a fresh one,
// caches it and returns it. Concurrent callers racing on a cold key may
// both load; last write wins, which is fine since values are immutable
// once written.
func readThrough[T any](ctx context.Context, store cache.Store, key string, load func() (T, error)) (T, error) {
	var out T
	if raw, ok := store.Get(ctx, key); ok {
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		logger.Warn().Msgf("Discarding undecodable cache entry %s", key)
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		logger.Error().Err(err).Msgf("Error serializing cache entry %s", key)
		return out, nil
	}
	// A missing row loads as a nil pointer and marshals to null; caching
	// that would pin the miss until the next invalidation of the key.
	if string(raw) == "null" {
		return out, nil
	}
	store.Set(ctx, key, raw)
	return out, nil
}
