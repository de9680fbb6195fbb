package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/affiliate"
	"github.com/shopspring/decimal"
)

var maxCommission = decimal.NewFromInt(100)

// CreateAffiliates grants the customer with req.Email one link per listed product
// of the caller's store. Either every link is created or none.
func (uc *AffiliateUC) CreateAffiliates(ctx context.Context, customerID string, req *models.CreateAffiliatesRequest) ([]models.Affiliate, error) {
	email := utils.NormalizeEmail(req.Email)
	if err := validateItems(email, req.List); err != nil {
		return nil, err
	}

	merchant, err := uc.repo.GetMerchantByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	for _, item := range req.List {
		product, err := uc.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.MerchantID != merchant.ID {
			return nil, affiliate.ErrProductNotOwned
		}
	}

	affCustomer, err := uc.repo.FindOrCreateAffiliateCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListAffiliatedProductIDs(ctx, merchant.ID, affCustomer.ID)
	if err != nil {
		return nil, err
	}
	promoted := make(map[string]bool, len(existing))
	for _, id := range existing {
		promoted[id] = true
	}

	now := uc.now()
	baseURL := strings.TrimRight(uc.cfg.Commerce.BaseURL, "/")
	affiliates := make([]models.Affiliate, 0, len(req.List))
	for _, item := range req.List {
		if promoted[item.ProductID] {
			return nil, affiliate.ErrAffiliateExists
		}
		uid := uuid.NewString()
		affiliates = append(affiliates, models.Affiliate{
			ID:                  uuid.NewString(),
			UID:                 uid,
			Status:              models.AffiliateStatusActive,
			Type:                models.AffiliateTypeDefault,
			Commission:          item.Commission,
			Link:                fmt.Sprintf("%s/affiliate/%s", baseURL, uid),
			AffiliateCustomerID: affCustomer.ID,
			ProductID:           item.ProductID,
			MerchantID:          merchant.ID,
			CreatedAt:           now,
		})
	}

	if err := uc.repo.CreateAffiliates(ctx, affiliates); err != nil {
		return nil, err
	}

	links := make([]string, 0, len(affiliates))
	for i := range affiliates {
		uc.invalidator.OnAffiliateCreated(ctx, &affiliates[i])
		links = append(links, affiliates[i].Link)
	}

	logger.InfoCtx(ctx, "Affiliates created",
		logger.String("merchant_id", merchant.ID),
		logger.String("affiliate_customer_id", affCustomer.ID),
		logger.Int("count", len(affiliates)))

	event := &models.AffiliateCreatedEvent{Email: customer.Email, Links: links}
	if err := uc.gw.PublishAffiliateCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish affiliate created event",
			logger.String("email", utils.MaskEmail(customer.Email)),
			logger.Err(err))
	}

	return affiliates, nil
}

func validateItems(email string, items []models.AffiliateItem) error {
	if !utils.IsValidEmail(email) || len(items) == 0 {
		return affiliate.ErrInvalidRequest
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return affiliate.ErrInvalidRequest
		}
		if item.Commission.IsNegative() || item.Commission.GreaterThan(maxCommission) {
			return affiliate.ErrInvalidCommission
		}
		if seen[item.ProductID] {
			return affiliate.ErrDuplicateProduct
		}
		seen[item.ProductID] = true
	}
	return nil
}
