package gateway

import (
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	"github.com/piresc/socialclub/services/affiliate"
	gatewaynats "github.com/piresc/socialclub/services/affiliate/gateway/nats"
)

// NewAffiliateGW creates the affiliate gateway
func NewAffiliateGW(natsClient *natspkg.Client) affiliate.AffiliateGW {
	return gatewaynats.NewNATSGateway(natsClient)
}
