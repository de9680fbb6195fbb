// Package invalidation owns the mapping from domain events to the revenue
// cache keys they make stale. Deletions are best effort: failures are logged
// and never reported to the caller.
package invalidation

import (
	"context"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_invalidator.go -package=mocks github.com/piresc/socialclub/internal/pkg/invalidation Invalidator

// Invalidator drops cached projections affected by a write
type Invalidator interface {
	OnTransactionPaid(ctx context.Context, tx *models.Transaction)
	OnAffiliateCreated(ctx context.Context, aff *models.Affiliate)
	OnProductCreated(ctx context.Context, product *models.Product)
}

// Store is the slice of the cache store the policy needs
type Store interface {
	Delete(ctx context.Context, keys ...string) error
}

// Policy is the Invalidator backed by the cache store
type Policy struct {
	store Store
}

// NewPolicy creates the invalidation policy
func NewPolicy(store Store) *Policy {
	return &Policy{store: store}
}

// CacheKey returns the cache key of a revenue report
func CacheKey(scope models.RevenueScope, scopeID string) string {
	switch scope {
	case models.ScopeMerchantPayout:
		return fmt.Sprintf(constants.KeyPayoutMerchant, scopeID)
	case models.ScopeMerchantProducts:
		return fmt.Sprintf(constants.KeyProductRevenueMerchant, scopeID)
	case models.ScopeAffiliateOwn:
		return fmt.Sprintf(constants.KeyAffiliateOwnRevenue, scopeID)
	case models.ScopeAffiliateMerchant:
		return fmt.Sprintf(constants.KeyAffiliateMerchantRevenue, scopeID)
	case models.ScopeProduct:
		return fmt.Sprintf(constants.KeyProductRevenue, scopeID)
	default:
		return ""
	}
}

// KeysForPaidTransaction lists every report that includes tx
func KeysForPaidTransaction(tx *models.Transaction) []string {
	keys := []string{
		CacheKey(models.ScopeMerchantPayout, tx.MerchantID),
		CacheKey(models.ScopeMerchantProducts, tx.MerchantID),
		CacheKey(models.ScopeProduct, tx.ProductID),
	}
	if tx.IsAffiliate() {
		if tx.AffiliateCustomerID != nil {
			keys = append(keys, CacheKey(models.ScopeAffiliateOwn, *tx.AffiliateCustomerID))
		}
		keys = append(keys, CacheKey(models.ScopeAffiliateMerchant, tx.MerchantID))
	}
	return keys
}

// KeysForAffiliate lists every report whose breakdown lists aff
func KeysForAffiliate(aff *models.Affiliate) []string {
	return []string{
		CacheKey(models.ScopeAffiliateOwn, aff.AffiliateCustomerID),
		CacheKey(models.ScopeAffiliateMerchant, aff.MerchantID),
		CacheKey(models.ScopeProduct, aff.ProductID),
	}
}

// KeysForProduct lists every report whose breakdown lists product
func KeysForProduct(product *models.Product) []string {
	return []string{
		CacheKey(models.ScopeMerchantPayout, product.MerchantID),
		CacheKey(models.ScopeMerchantProducts, product.MerchantID),
	}
}

func (p *Policy) OnTransactionPaid(ctx context.Context, tx *models.Transaction) {
	p.drop(ctx, "transaction_paid", KeysForPaidTransaction(tx))
}

func (p *Policy) OnAffiliateCreated(ctx context.Context, aff *models.Affiliate) {
	p.drop(ctx, "affiliate_created", KeysForAffiliate(aff))
}

func (p *Policy) OnProductCreated(ctx context.Context, product *models.Product) {
	p.drop(ctx, "product_created", KeysForProduct(product))
}

func (p *Policy) drop(ctx context.Context, event string, keys []string) {
	if err := p.store.Delete(ctx, keys...); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate revenue cache",
			logger.String("event", event),
			logger.Strings("keys", keys),
			logger.Err(err))
		return
	}
	logger.DebugCtx(ctx, "Invalidated revenue cache",
		logger.String("event", event),
		logger.Strings("keys", keys))
}
