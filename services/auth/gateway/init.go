package gateway

import (
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	"github.com/piresc/socialclub/services/auth"
	gatewaynats "github.com/piresc/socialclub/services/auth/gateway/nats"
)

// NewAuthGW creates the auth gateway
func NewAuthGW(natsClient *natspkg.Client) auth.AuthGW {
	return gatewaynats.NewNATSGateway(natsClient)
}
