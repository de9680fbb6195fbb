package affiliate

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/socialclub/services/affiliate AffiliateRepo

// AffiliateRepo defines the affiliate persistence operations
type AffiliateRepo interface {
	// Parties
	GetMerchantByCustomer(ctx context.Context, customerID string) (*models.Merchant, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetAffiliateCustomerByCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error)
	FindOrCreateAffiliateCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// Links
	CreateAffiliates(ctx context.Context, affiliates []models.Affiliate) error
	GetAffiliateByUID(ctx context.Context, uid string) (*models.Affiliate, error)
	ListLinksByAffiliateCustomer(ctx context.Context, affiliateCustomerID string) ([]models.AffiliateLink, error)
	ListAffiliatedProductIDs(ctx context.Context, merchantID, affiliateCustomerID string) ([]string, error)
}
