package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// GetCachedReport returns the cached report JSON, hit is false on a miss
func (r *RevenueRepo) GetCachedReport(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached report: %w", err)
	}
	return []byte(val), true, nil
}

// SetCachedReport stores a report until it is invalidated
func (r *RevenueRepo) SetCachedReport(ctx context.Context, key string, report []byte) error {
	if err := r.redisClient.Set(ctx, key, report, 0); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
