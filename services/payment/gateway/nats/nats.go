package nats

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
)

// NATSGateway publishes payment events
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishPurchasePaid announces a settled purchase
func (g *NATSGateway) PublishPurchasePaid(ctx context.Context, event *models.PurchasePaidEvent) error {
	return g.producer.Publish(constants.SubjectPurchasePaid, event)
}
