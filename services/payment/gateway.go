package payment

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/socialclub/services/payment PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// QPay
	CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, error)
	CheckPayment(ctx context.Context, invoiceID string) (*models.Settlement, error)

	// NATS
	PublishPurchasePaid(ctx context.Context, event *models.PurchasePaidEvent) error
}
