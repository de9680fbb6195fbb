package nats

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
)

// NATSGateway publishes affiliate events
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishAffiliateCreated asks the notifier to mail the new links
func (g *NATSGateway) PublishAffiliateCreated(ctx context.Context, event *models.AffiliateCreatedEvent) error {
	return g.producer.Publish(constants.SubjectAffiliateCreated, event)
}
