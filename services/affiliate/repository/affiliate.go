package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/apperror"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/affiliate"
)

// CreateAffiliates stores a batch of links in one transaction
func (r *AffiliateRepo) CreateAffiliates(ctx context.Context, affiliates []models.Affiliate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO affiliates (
			id, uid, status, type, commission, link, affiliate_customer_id, product_id,
			merchant_id, created_at
		) VALUES (:id, :uid, :status, :type, :commission, :link, :affiliate_customer_id, :product_id,
			:merchant_id, :created_at)
	`
	for i := range affiliates {
		if _, err = tx.NamedExecContext(ctx, query, &affiliates[i]); err != nil {
			if database.IsUniqueViolation(err) {
				return apperror.WithCause(affiliate.ErrAffiliateExists, err)
			}
			return fmt.Errorf("failed to insert affiliate: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAffiliateByUID retrieves a link by its public id
func (r *AffiliateRepo) GetAffiliateByUID(ctx context.Context, uid string) (*models.Affiliate, error) {
	query := `
		SELECT id, uid, status, type, commission, link, affiliate_customer_id, product_id, merchant_id, created_at
		FROM affiliates
		WHERE uid = $1
	`

	var aff models.Affiliate
	if err := r.db.GetContext(ctx, &aff, query, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, affiliate.ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return &aff, nil
}

// ListLinksByAffiliateCustomer lists the uid and product of every link a referrer holds
func (r *AffiliateRepo) ListLinksByAffiliateCustomer(ctx context.Context, affiliateCustomerID string) ([]models.AffiliateLink, error) {
	query := `
		SELECT uid, product_id
		FROM affiliates
		WHERE affiliate_customer_id = $1
		ORDER BY created_at
	`

	var links []models.AffiliateLink
	if err := r.db.SelectContext(ctx, &links, query, affiliateCustomerID); err != nil {
		return nil, fmt.Errorf("failed to list affiliate links: %w", err)
	}
	return links, nil
}

// ListAffiliatedProductIDs lists the products of merchantID the referrer already promotes
func (r *AffiliateRepo) ListAffiliatedProductIDs(ctx context.Context, merchantID, affiliateCustomerID string) ([]string, error) {
	query := `
		SELECT product_id
		FROM affiliates
		WHERE merchant_id = $1 AND affiliate_customer_id = $2
		ORDER BY created_at
	`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, merchantID, affiliateCustomerID); err != nil {
		return nil, fmt.Errorf("failed to list affiliated products: %w", err)
	}
	return ids, nil
}
