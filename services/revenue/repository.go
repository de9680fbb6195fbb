package revenue

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/socialclub/services/revenue RevenueRepo

// RevenueRepo reads the ledger and the report cache
type RevenueRepo interface {
	// Owners of a scope
	GetMerchantByCustomer(ctx context.Context, customerID string) (*models.Merchant, error)
	GetAffiliateCustomerByCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// Ledger
	ListPaidTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)

	// Breakdown entities
	ListMerchantProducts(ctx context.Context, merchantID string) ([]models.RevenueEntity, error)
	ListAffiliatesByCustomer(ctx context.Context, affiliateCustomerID string) ([]models.RevenueEntity, error)
	ListAffiliatesByMerchant(ctx context.Context, merchantID string) ([]models.RevenueEntity, error)
	ListAffiliatesByProduct(ctx context.Context, productID string) ([]models.RevenueEntity, error)

	// Report cache
	GetCachedReport(ctx context.Context, key string) ([]byte, bool, error)
	SetCachedReport(ctx context.Context, key string, report []byte) error
}
