package usecase

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
)

// GetStore returns a merchant with every product it sells
func (uc *CatalogUC) GetStore(ctx context.Context, merchantID string) (*models.Store, error) {
	merchant, err := uc.repo.GetMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	products, err := uc.repo.ListProductsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	return &models.Store{Merchant: merchant, Products: products}, nil
}

// ListMerchants returns the ids of all merchants, served from Redis when cached
func (uc *CatalogUC) ListMerchants(ctx context.Context) ([]string, error) {
	ids, ok, err := uc.repo.GetCachedMerchantList(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read merchant list cache", logger.Err(err))
	}
	if ok {
		return ids, nil
	}

	ids, err = uc.repo.ListMerchantIDs(ctx)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	if err := uc.repo.SetCachedMerchantList(ctx, ids); err != nil {
		logger.WarnCtx(ctx, "Failed to cache merchant list", logger.Err(err))
	}
	return ids, nil
}
