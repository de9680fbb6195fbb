package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/auth"
)

// SendOTP issues a signup code for email, replacing any earlier one, and
// returns when it expires
func (uc *AuthUC) SendOTP(ctx context.Context, email string) (time.Time, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return time.Time{}, auth.ErrInvalidEmail
	}

	code, err := utils.GenerateNumericCode(otpLength)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to generate otp: %w", err)
	}

	ttl := time.Duration(uc.cfg.Commerce.OTPExpirationSeconds) * time.Second
	if err := uc.repo.StoreOTP(ctx, email, code, ttl); err != nil {
		return time.Time{}, err
	}
	expiresAt := uc.now().Add(ttl)

	event := &models.OTPRequestedEvent{Email: email, Code: code, ExpiresAt: expiresAt}
	if err := uc.gw.PublishOTPRequested(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish otp requested event",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "OTP issued", logger.String("email", utils.MaskEmail(email)))
	return expiresAt, nil
}

// verifyOTP consumes the code stored for email
func (uc *AuthUC) verifyOTP(ctx context.Context, email, code string) error {
	stored, err := uc.repo.GetOTP(ctx, email)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return auth.ErrOTPMismatch
	}

	if err := uc.repo.DeleteOTP(ctx, email); err != nil {
		logger.WarnCtx(ctx, "Failed to delete used otp", logger.Err(err))
	}
	return nil
}
