package auth

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/socialclub/services/auth AuthGW

// AuthGW hands signup codes and reset links to the notifier
type AuthGW interface {
	PublishOTPRequested(ctx context.Context, event *models.OTPRequestedEvent) error
	PublishPasswordResetRequested(ctx context.Context, event *models.PasswordResetRequestedEvent) error
}
