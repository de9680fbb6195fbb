package usecase

import (
	"context"
	"errors"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/affiliate"
)

// GetByUID resolves an affiliate link together with the product it sells
func (uc *AffiliateUC) GetByUID(ctx context.Context, uid string) (*models.AffiliateDetail, error) {
	aff, err := uc.repo.GetAffiliateByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	product, err := uc.repo.GetProduct(ctx, aff.ProductID)
	if err != nil {
		return nil, err
	}

	return &models.AffiliateDetail{Affiliate: *aff, Product: product}, nil
}

// ListSiblings lists every link held by the owner of the link uid
func (uc *AffiliateUC) ListSiblings(ctx context.Context, uid string) ([]models.AffiliateLink, error) {
	aff, err := uc.repo.GetAffiliateByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	links, err := uc.repo.ListLinksByAffiliateCustomer(ctx, aff.AffiliateCustomerID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.AffiliateLink{}
	}
	return links, nil
}

// CheckCustomer tells the calling merchant which of its products the customer
// with email already promotes
func (uc *AffiliateUC) CheckCustomer(ctx context.Context, customerID, email string) (*models.CustomerCheck, error) {
	merchant, err := uc.repo.GetMerchantByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	check := &models.CustomerCheck{Customer: customer, AffiliatedProduct: []string{}}

	affCustomer, err := uc.repo.GetAffiliateCustomerByCustomer(ctx, customer.ID)
	if errors.Is(err, affiliate.ErrAffiliateCustomerNotFound) {
		return check, nil
	}
	if err != nil {
		return nil, err
	}

	ids, err := uc.repo.ListAffiliatedProductIDs(ctx, merchant.ID, affCustomer.ID)
	if err != nil {
		return nil, err
	}
	if ids != nil {
		check.AffiliatedProduct = ids
	}
	return check, nil
}
