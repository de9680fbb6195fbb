package nats

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
)

// NATSGateway publishes auth events
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishOTPRequested asks the notifier to mail a signup code
func (g *NATSGateway) PublishOTPRequested(ctx context.Context, event *models.OTPRequestedEvent) error {
	return g.producer.Publish(constants.SubjectOTPRequested, event)
}

// PublishPasswordResetRequested asks the notifier to mail a reset link
func (g *NATSGateway) PublishPasswordResetRequested(ctx context.Context, event *models.PasswordResetRequestedEvent) error {
	return g.producer.Publish(constants.SubjectPasswordReset, event)
}
