package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/services/auth"
)

// StoreOTP saves code for email, overwriting the previous one
func (r *AuthRepo) StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, otpKey(email), code, ttl); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// GetOTP returns the live code for email
func (r *AuthRepo) GetOTP(ctx context.Context, email string) (string, error) {
	code, err := r.redisClient.Get(ctx, otpKey(email))
	if errors.Is(err, redis.Nil) {
		return "", auth.ErrOTPExpired
	}
	if err != nil {
		return "", fmt.Errorf("failed to get otp: %w", err)
	}
	return code, nil
}

// DeleteOTP drops the code for email
func (r *AuthRepo) DeleteOTP(ctx context.Context, email string) error {
	return r.redisClient.Delete(ctx, otpKey(email))
}

func otpKey(email string) string {
	return fmt.Sprintf(constants.KeyCustomerOTP, email)
}
