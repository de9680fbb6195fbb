package affiliate

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/socialclub/services/affiliate AffiliateGW

// AffiliateGW announces new affiliate links
type AffiliateGW interface {
	PublishAffiliateCreated(ctx context.Context, event *models.AffiliateCreatedEvent) error
}
