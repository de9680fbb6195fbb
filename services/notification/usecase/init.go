package usecase

import (
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/notification"
)

// NotificationUC implements notification.NotificationUC
type NotificationUC struct {
	mailer notification.Mailer
	cfg    *models.Config
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(mailer notification.Mailer, cfg *models.Config) *NotificationUC {
	return &NotificationUC{
		mailer: mailer,
		cfg:    cfg,
	}
}
