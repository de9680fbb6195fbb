package notification

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/notification NotificationUC

// NotificationUC turns domain events into customer emails
type NotificationUC interface {
	NotifyPurchasePaid(ctx context.Context, event *models.PurchasePaidEvent) error
	NotifyAffiliateCreated(ctx context.Context, event *models.AffiliateCreatedEvent) error
	NotifyOTPRequested(ctx context.Context, event *models.OTPRequestedEvent) error
	NotifyPasswordResetRequested(ctx context.Context, event *models.PasswordResetRequestedEvent) error
}
