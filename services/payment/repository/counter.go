package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/socialclub/internal/pkg/constants"
)

// reserveSlotScript increments the paid-customer counter unless it already
// reached the limit. A limit of 0 means unlimited. Returns -1 when full.
var reserveSlotScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if limit > 0 and current >= limit then
	return -1
end
return redis.call("INCR", KEYS[1])
`)

func counterKey(productID string) string {
	return fmt.Sprintf(constants.KeyProductLimitCustomerCount, productID)
}

// PaidCounterExists reports whether the counter of a product was seeded
func (r *PaymentRepo) PaidCounterExists(ctx context.Context, productID string) (bool, error) {
	return r.redisClient.Exists(ctx, counterKey(productID))
}

// SeedPaidCounter initialises the counter unless another request already did
func (r *PaymentRepo) SeedPaidCounter(ctx context.Context, productID string, count int64) error {
	_, err := r.redisClient.SetNX(ctx, counterKey(productID), count, 0)
	return err
}

// ReservePaidSlot atomically checks the limit and takes one slot
func (r *PaymentRepo) ReservePaidSlot(ctx context.Context, productID string, limit int) (bool, error) {
	res, err := r.redisClient.RunScript(ctx, reserveSlotScript, []string{counterKey(productID)}, limit)
	if err != nil {
		return false, fmt.Errorf("failed to run reserve script: %w", err)
	}

	n, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected reserve script result %T", res)
	}
	return n >= 0, nil
}

// ReleasePaidSlot gives back a slot taken by ReservePaidSlot
func (r *PaymentRepo) ReleasePaidSlot(ctx context.Context, productID string) error {
	_, err := r.redisClient.Decr(ctx, counterKey(productID))
	return err
}
