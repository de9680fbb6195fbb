package catalog

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/catalog CatalogUC

// CatalogUC manages merchants, their products and the storefront reads
type CatalogUC interface {
	CreateProduct(ctx context.Context, customerID string, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	GetProductByUID(ctx context.Context, uid string) (*models.Product, error)
	GetStore(ctx context.Context, merchantID string) (*models.Store, error)
	ListMerchants(ctx context.Context) ([]string, error)
}
