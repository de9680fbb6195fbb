package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/affiliate"
)

// GetMerchantByCustomer retrieves the store owned by a customer
func (r *AffiliateRepo) GetMerchantByCustomer(ctx context.Context, customerID string) (*models.Merchant, error) {
	query := `SELECT id, customer_id, store_name, created_at FROM merchants WHERE customer_id = $1`

	var merchant models.Merchant
	if err := r.db.GetContext(ctx, &merchant, query, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, affiliate.ErrMerchantRequired
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

// GetCustomerByEmail retrieves a registered customer
func (r *AffiliateRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `SELECT id, uid, email, name, password_hash, created_at, updated_at FROM customers WHERE email = $1`

	var customer models.Customer
	if err := r.db.GetContext(ctx, &customer, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, affiliate.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// GetAffiliateCustomerByCustomer retrieves the referrer profile of a customer
func (r *AffiliateRepo) GetAffiliateCustomerByCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error) {
	query := `SELECT id, customer_id, created_at FROM affiliate_customers WHERE customer_id = $1`

	var affCustomer models.AffiliateCustomer
	if err := r.db.GetContext(ctx, &affCustomer, query, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, affiliate.ErrAffiliateCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate customer: %w", err)
	}
	return &affCustomer, nil
}

// FindOrCreateAffiliateCustomer returns the referrer profile of a customer, creating it on first grant
func (r *AffiliateRepo) FindOrCreateAffiliateCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error) {
	query := `
		INSERT INTO affiliate_customers (id, customer_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id, customer_id, created_at
	`

	var affCustomer models.AffiliateCustomer
	if err := r.db.GetContext(ctx, &affCustomer, query, uuid.NewString(), customerID, models.Now()); err != nil {
		return nil, fmt.Errorf("failed to find or create affiliate customer: %w", err)
	}
	return &affCustomer, nil
}

// GetProduct retrieves a product without its options
func (r *AffiliateRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, uid, merchant_id, title, description, summary, price, limit_customer, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	if err := r.db.GetContext(ctx, &product, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, affiliate.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}
