package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/auth"
)

// GetSignupToken returns the email a signup token was issued for
func (r *AuthRepo) GetSignupToken(ctx context.Context, token string) (string, error) {
	email, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeySignupToken, token))
	if errors.Is(err, redis.Nil) {
		return "", auth.ErrSignupTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get signup token: %w", err)
	}
	return email, nil
}

// DeleteSignupToken drops a used signup token
func (r *AuthRepo) DeleteSignupToken(ctx context.Context, token string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeySignupToken, token))
}

// StorePasswordReset saves a reset link. An earlier link of the same email
// stops working.
func (r *AuthRepo) StorePasswordReset(ctx context.Context, reset *models.PasswordReset, ttl time.Duration) error {
	emailKey := fmt.Sprintf(constants.KeyPasswordResetByEmail, reset.Email)

	previous, err := r.redisClient.Get(ctx, emailKey)
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to get previous password reset: %w", err)
	}
	if previous != "" && previous != reset.UID {
		if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyPasswordReset, previous)); err != nil {
			return fmt.Errorf("failed to revoke previous password reset: %w", err)
		}
	}

	data, err := json.Marshal(reset)
	if err != nil {
		return fmt.Errorf("failed to marshal password reset: %w", err)
	}
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyPasswordReset, reset.UID), data, ttl); err != nil {
		return fmt.Errorf("failed to store password reset: %w", err)
	}
	if err := r.redisClient.Set(ctx, emailKey, reset.UID, ttl); err != nil {
		return fmt.Errorf("failed to store password reset: %w", err)
	}
	return nil
}

// GetPasswordReset returns the live reset link uid
func (r *AuthRepo) GetPasswordReset(ctx context.Context, uid string) (*models.PasswordReset, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyPasswordReset, uid))
	if errors.Is(err, redis.Nil) {
		return nil, auth.ErrPasswordResetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	var reset models.PasswordReset
	if err := json.Unmarshal([]byte(data), &reset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal password reset: %w", err)
	}
	return &reset, nil
}

// DeletePasswordReset drops a used reset link
func (r *AuthRepo) DeletePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	return r.redisClient.Delete(ctx,
		fmt.Sprintf(constants.KeyPasswordReset, reset.UID),
		fmt.Sprintf(constants.KeyPasswordResetByEmail, reset.Email))
}
