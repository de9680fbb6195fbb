package gateway

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	"github.com/piresc/socialclub/services/payment"
	gatewaynats "github.com/piresc/socialclub/services/payment/gateway/nats"
	"github.com/piresc/socialclub/services/payment/gateway/qpay"
)

// PaymentGW combines the QPay client and the event publisher
type PaymentGW struct {
	qpay *qpay.Client
	nats *gatewaynats.NATSGateway
}

// NewPaymentGW creates the payment gateway
func NewPaymentGW(cfg models.QPayConfig, redisClient *database.RedisClient, natsClient *natspkg.Client) payment.PaymentGW {
	return &PaymentGW{
		qpay: qpay.NewClient(cfg, redisClient),
		nats: gatewaynats.NewNATSGateway(natsClient),
	}
}

func (g *PaymentGW) CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
	return g.qpay.CreateInvoice(ctx, req)
}

func (g *PaymentGW) CheckPayment(ctx context.Context, invoiceID string) (*models.Settlement, error) {
	return g.qpay.CheckPayment(ctx, invoiceID)
}

func (g *PaymentGW) PublishPurchasePaid(ctx context.Context, event *models.PurchasePaidEvent) error {
	return g.nats.PublishPurchasePaid(ctx, event)
}
