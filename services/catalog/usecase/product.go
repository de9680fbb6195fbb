package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/catalog"
)

// CreateProduct lists a product for the caller, opening its store on first use
func (uc *CatalogUC) CreateProduct(ctx context.Context, customerID string, req *models.CreateProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	merchant, created, err := uc.repo.FindOrCreateMerchant(ctx, customerID, strings.TrimSpace(req.StoreName))
	if err != nil {
		return nil, err
	}
	if created {
		logger.InfoCtx(ctx, "Merchant created",
			logger.String("merchant_id", merchant.ID),
			logger.String("customer_id", customerID))
		if err := uc.repo.DropCachedMerchantList(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to drop merchant list cache", logger.Err(err))
		}
	}

	now := uc.now()
	product := &models.Product{
		ID:            uuid.NewString(),
		UID:           uuid.NewString(),
		MerchantID:    merchant.ID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Summary:       req.Summary,
		Price:         req.Price,
		LimitCustomer: req.LimitCustomer,
		Options:       make([]models.Option, 0, len(req.Options)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, o := range req.Options {
		product.Options = append(product.Options, models.Option{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Price:     o.Price,
			Duration:  o.Duration,
			Type:      o.Type,
			CreatedAt: now,
		})
	}

	if err := uc.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidator.OnProductCreated(ctx, product)

	logger.InfoCtx(ctx, "Product created",
		logger.String("product_id", product.ID),
		logger.String("merchant_id", merchant.ID),
		logger.Int("options", len(product.Options)))

	return product, nil
}

func validateProduct(req *models.CreateProductRequest) error {
	if strings.TrimSpace(req.Title) == "" || !req.Price.IsPositive() {
		return catalog.ErrInvalidProduct
	}
	if req.LimitCustomer != nil && *req.LimitCustomer < 0 {
		return catalog.ErrInvalidLimit
	}
	for _, o := range req.Options {
		if !o.Price.IsPositive() {
			return catalog.ErrInvalidOption
		}
	}
	return nil
}

// GetProduct returns a product with its options
func (uc *CatalogUC) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return uc.repo.GetProduct(ctx, productID)
}

// GetProductByUID returns a product by the public id used in storefront links
func (uc *CatalogUC) GetProductByUID(ctx context.Context, uid string) (*models.Product, error) {
	return uc.repo.GetProductByUID(ctx, uid)
}
