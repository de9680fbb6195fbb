package repository

import (
	"context"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/models"
)

// ListMerchantProducts lists a store's products labelled by title
func (r *RevenueRepo) ListMerchantProducts(ctx context.Context, merchantID string) ([]models.RevenueEntity, error) {
	query := `SELECT id, title AS label FROM products WHERE merchant_id = $1 ORDER BY created_at`
	return r.selectEntities(ctx, query, merchantID)
}

// ListAffiliatesByCustomer lists an affiliate's links labelled by the product they sell
func (r *RevenueRepo) ListAffiliatesByCustomer(ctx context.Context, affiliateCustomerID string) ([]models.RevenueEntity, error) {
	query := `
		SELECT a.id, p.title AS label
		FROM affiliates a
		JOIN products p ON p.id = a.product_id
		WHERE a.affiliate_customer_id = $1
		ORDER BY a.created_at
	`
	return r.selectEntities(ctx, query, affiliateCustomerID)
}

// ListAffiliatesByMerchant lists the links granted by a store labelled by the affiliate's email
func (r *RevenueRepo) ListAffiliatesByMerchant(ctx context.Context, merchantID string) ([]models.RevenueEntity, error) {
	query := `
		SELECT a.id, c.email AS label
		FROM affiliates a
		JOIN affiliate_customers ac ON ac.id = a.affiliate_customer_id
		JOIN customers c ON c.id = ac.customer_id
		WHERE a.merchant_id = $1
		ORDER BY a.created_at
	`
	return r.selectEntities(ctx, query, merchantID)
}

// ListAffiliatesByProduct lists the links of one product labelled by the affiliate's email
func (r *RevenueRepo) ListAffiliatesByProduct(ctx context.Context, productID string) ([]models.RevenueEntity, error) {
	query := `
		SELECT a.id, c.email AS label
		FROM affiliates a
		JOIN affiliate_customers ac ON ac.id = a.affiliate_customer_id
		JOIN customers c ON c.id = ac.customer_id
		WHERE a.product_id = $1
		ORDER BY a.created_at
	`
	return r.selectEntities(ctx, query, productID)
}

func (r *RevenueRepo) selectEntities(ctx context.Context, query string, arg string) ([]models.RevenueEntity, error) {
	var entities []models.RevenueEntity
	if err := r.db.SelectContext(ctx, &entities, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list report entities: %w", err)
	}
	return entities, nil
}
