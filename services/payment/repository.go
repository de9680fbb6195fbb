package payment

import (
	"context"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/socialclub/services/payment PaymentRepo

// PaymentRepo persists transactions and guards the per-product paid-customer counter
type PaymentRepo interface {
	// Ledger
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByUID(ctx context.Context, uid string) (*models.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	MarkTransactionPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
	CountPaidTransactions(ctx context.Context, productID string) (int64, error)

	// Catalog and parties
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	GetAffiliateByID(ctx context.Context, id string) (*models.Affiliate, error)
	GetAffiliateByUID(ctx context.Context, uid string) (*models.Affiliate, error)
	FindOrCreateCustomer(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	StoreSignupToken(ctx context.Context, token, email string, ttl time.Duration) error

	// Paid-customer counter
	PaidCounterExists(ctx context.Context, productID string) (bool, error)
	SeedPaidCounter(ctx context.Context, productID string, count int64) error
	ReservePaidSlot(ctx context.Context, productID string, limit int) (bool, error)
	ReleasePaidSlot(ctx context.Context, productID string) error
}
