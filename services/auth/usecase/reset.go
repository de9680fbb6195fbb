package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/auth"
)

// CheckSignupToken reports whether token was issued for email
func (uc *AuthUC) CheckSignupToken(ctx context.Context, token, email string) error {
	owner, err := uc.repo.GetSignupToken(ctx, token)
	if err != nil {
		return err
	}
	if owner != utils.NormalizeEmail(email) {
		return auth.ErrSignupTokenMismatch
	}
	return nil
}

// ForgotPassword mails a reset link to a known customer and returns when the
// link expires
func (uc *AuthUC) ForgotPassword(ctx context.Context, email string) (time.Time, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return time.Time{}, auth.ErrInvalidEmail
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return time.Time{}, err
	}

	ttl := time.Duration(uc.cfg.Commerce.PasswordResetExpirationSeconds) * time.Second
	reset := &models.PasswordReset{
		UID:       uuid.NewString(),
		Email:     customer.Email,
		ExpiresAt: uc.now().Add(ttl),
	}
	if err := uc.repo.StorePasswordReset(ctx, reset, ttl); err != nil {
		return time.Time{}, err
	}

	event := &models.PasswordResetRequestedEvent{
		Email:     reset.Email,
		Link:      fmt.Sprintf("%s/forget-password/%s", uc.cfg.Commerce.BaseURL, reset.UID),
		ExpiresAt: reset.ExpiresAt,
	}
	if err := uc.gw.PublishPasswordResetRequested(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish password reset event",
			logger.String("customer_id", customer.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Password reset issued", logger.String("customer_id", customer.ID))
	return reset.ExpiresAt, nil
}

// GetPasswordReset returns a reset link that has not expired
func (uc *AuthUC) GetPasswordReset(ctx context.Context, uid string) (*models.PasswordReset, error) {
	return uc.repo.GetPasswordReset(ctx, uid)
}

// ResetPassword sets a new password through a live reset link and signs the
// customer in. The link works once.
func (uc *AuthUC) ResetPassword(ctx context.Context, uid, newPassword string) (*models.AuthResponse, error) {
	if len(newPassword) < minPasswordLength {
		return nil, auth.ErrWeakPassword
	}

	reset, err := uc.repo.GetPasswordReset(ctx, uid)
	if err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, reset.Email)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hash(newPassword)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePasswordHash(ctx, customer.ID, hash); err != nil {
		return nil, err
	}

	if err := uc.repo.DeletePasswordReset(ctx, reset); err != nil {
		logger.WarnCtx(ctx, "Failed to delete used password reset", logger.Err(err))
	}

	logger.InfoCtx(ctx, "Password reset", logger.String("customer_id", customer.ID))
	return uc.issueTokens(customer)
}
