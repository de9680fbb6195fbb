package catalog

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/socialclub/services/catalog CatalogRepo

// CatalogRepo defines the catalog persistence operations
type CatalogRepo interface {
	// Merchants
	FindOrCreateMerchant(ctx context.Context, customerID, storeName string) (*models.Merchant, bool, error)
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	ListMerchantIDs(ctx context.Context) ([]string, error)

	// Products
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	GetProductByUID(ctx context.Context, uid string) (*models.Product, error)
	ListProductsByMerchant(ctx context.Context, merchantID string) ([]models.Product, error)

	// Merchant list cache
	GetCachedMerchantList(ctx context.Context) ([]string, bool, error)
	SetCachedMerchantList(ctx context.Context, ids []string) error
	DropCachedMerchantList(ctx context.Context) error
}
