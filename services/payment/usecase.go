package payment

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/payment PaymentUC

// PaymentUC covers the transaction lifecycle from invoice to settlement
type PaymentUC interface {
	// Invoices
	CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceResult, error)
	CreateAffiliateInvoice(ctx context.Context, req *models.CreateAffiliateInvoiceRequest) (*models.InvoiceResult, error)

	// Settlement
	ConfirmPayment(ctx context.Context, uid string, mode models.PaymentMode) (*models.Transaction, error)
	CheckTransaction(ctx context.Context, id string) (*models.TransactionStatusView, error)
}
