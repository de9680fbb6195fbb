package nats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishAffiliateCreated(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL(), "affiliate-test")
	require.NoError(t, err)
	defer client.Close()

	sub, err := client.GetConn().SubscribeSync(constants.SubjectAffiliateCreated)
	require.NoError(t, err)
	require.NoError(t, client.GetConn().Flush())

	err = NewNATSGateway(client).PublishAffiliateCreated(context.Background(), &models.AffiliateCreatedEvent{
		Email: "promoter@example.com",
		Links: []string{"https://shop/affiliate/u-1"},
	})
	require.NoError(t, err)

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var event models.AffiliateCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "promoter@example.com", event.Email)
	assert.Equal(t, []string{"https://shop/affiliate/u-1"}, event.Links)
}
