package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/invalidation"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	nrpkg "github.com/piresc/socialclub/internal/pkg/newrelic"
	"github.com/piresc/socialclub/services/revenue"
)

// scopeSource resolves what a scope reads from the ledger
type scopeSource struct {
	scopeID  string
	filter   models.TransactionFilter
	entities func(ctx context.Context) ([]models.RevenueEntity, error)
}

// GetReport serves a report from the cache, computing and storing it on a miss
func (u *RevenueUC) GetReport(ctx context.Context, scope models.RevenueScope, customerID, productID string) (json.RawMessage, error) {
	src, err := u.resolve(ctx, scope, customerID, productID)
	if err != nil {
		if errors.Is(err, revenue.ErrMerchantNotFound) || errors.Is(err, revenue.ErrAffiliateCustomerNotFound) {
			// customers without a store or affiliate links see an empty dashboard
			return json.Marshal(Aggregate(nil, nil, AggregateOptions{Scope: scope, Now: u.now()}))
		}
		return nil, err
	}

	key := invalidation.CacheKey(scope, src.scopeID)

	cached, hit, err := u.repo.GetCachedReport(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read revenue cache",
			logger.String("key", key),
			logger.Err(err))
	}
	if hit {
		return json.RawMessage(cached), nil
	}

	report, err := nrpkg.WithSegmentAndReturn(ctx, "revenue.aggregate", func() (*models.RevenueReport, error) {
		return u.compute(ctx, scope, src)
	})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	if err := u.repo.SetCachedReport(ctx, key, data); err != nil {
		logger.WarnCtx(ctx, "Failed to write revenue cache",
			logger.String("key", key),
			logger.Err(err))
	}

	return data, nil
}

func (u *RevenueUC) compute(ctx context.Context, scope models.RevenueScope, src *scopeSource) (*models.RevenueReport, error) {
	txns, err := u.repo.ListPaidTransactions(ctx, src.filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	entities, err := src.entities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report entities: %w", err)
	}

	return Aggregate(txns, entities, AggregateOptions{
		Scope:    scope,
		ScopeID:  src.scopeID,
		Location: u.loc,
		Now:      u.now(),
	}), nil
}

func (u *RevenueUC) resolve(ctx context.Context, scope models.RevenueScope, customerID, productID string) (*scopeSource, error) {
	switch scope {
	case models.ScopeMerchantPayout, models.ScopeMerchantProducts:
		merchant, err := u.repo.GetMerchantByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return &scopeSource{
			scopeID: merchant.ID,
			filter:  models.TransactionFilter{MerchantID: merchant.ID},
			entities: func(ctx context.Context) ([]models.RevenueEntity, error) {
				return u.repo.ListMerchantProducts(ctx, merchant.ID)
			},
		}, nil

	case models.ScopeAffiliateOwn:
		ac, err := u.repo.GetAffiliateCustomerByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return &scopeSource{
			scopeID: ac.ID,
			filter:  models.TransactionFilter{AffiliateCustomerID: ac.ID},
			entities: func(ctx context.Context) ([]models.RevenueEntity, error) {
				return u.repo.ListAffiliatesByCustomer(ctx, ac.ID)
			},
		}, nil

	case models.ScopeAffiliateMerchant:
		merchant, err := u.repo.GetMerchantByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return &scopeSource{
			scopeID: merchant.ID,
			filter:  models.TransactionFilter{MerchantID: merchant.ID, AffiliateOnly: true},
			entities: func(ctx context.Context) ([]models.RevenueEntity, error) {
				return u.repo.ListAffiliatesByMerchant(ctx, merchant.ID)
			},
		}, nil

	case models.ScopeProduct:
		product, err := u.repo.GetProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		merchant, err := u.repo.GetMerchantByCustomer(ctx, customerID)
		if errors.Is(err, revenue.ErrMerchantNotFound) {
			return nil, revenue.ErrProductNotOwned
		}
		if err != nil {
			return nil, err
		}
		if product.MerchantID != merchant.ID {
			return nil, revenue.ErrProductNotOwned
		}
		return &scopeSource{
			scopeID: product.ID,
			filter:  models.TransactionFilter{ProductID: product.ID},
			entities: func(ctx context.Context) ([]models.RevenueEntity, error) {
				return u.repo.ListAffiliatesByProduct(ctx, product.ID)
			},
		}, nil
	}

	return nil, revenue.ErrUnknownScope
}
