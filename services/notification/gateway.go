package notification

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/socialclub/services/notification Mailer

// Mailer delivers emails
type Mailer interface {
	Send(ctx context.Context, email *models.Email) error
}
