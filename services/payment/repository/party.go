package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/payment"
)

const affiliateColumns = `id, uid, status, type, commission, link, affiliate_customer_id, product_id, merchant_id, created_at`

// GetProduct retrieves a product with its options
func (r *PaymentRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, uid, merchant_id, title, description, summary, price, limit_customer, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	if err := r.db.GetContext(ctx, &product, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	optionsQuery := `
		SELECT id, product_id, price, duration, type, created_at
		FROM options
		WHERE product_id = $1
		ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &product.Options, optionsQuery, productID); err != nil {
		return nil, fmt.Errorf("failed to get product options: %w", err)
	}

	return &product, nil
}

// GetAffiliateByID retrieves an affiliate link by primary key
func (r *PaymentRepo) GetAffiliateByID(ctx context.Context, id string) (*models.Affiliate, error) {
	return r.getAffiliate(ctx, "id", id)
}

// GetAffiliateByUID retrieves an affiliate link by its public id
func (r *PaymentRepo) GetAffiliateByUID(ctx context.Context, uid string) (*models.Affiliate, error) {
	return r.getAffiliate(ctx, "uid", uid)
}

func (r *PaymentRepo) getAffiliate(ctx context.Context, field, value string) (*models.Affiliate, error) {
	query := fmt.Sprintf(`SELECT %s FROM affiliates WHERE %s = $1`, affiliateColumns, field)

	var aff models.Affiliate
	if err := r.db.GetContext(ctx, &aff, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return &aff, nil
}

// FindOrCreateCustomer returns the customer with email, registering a
// passwordless one on first purchase
func (r *PaymentRepo) FindOrCreateCustomer(ctx context.Context, email string) (*models.Customer, error) {
	query := `
		INSERT INTO customers (id, uid, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, '', '', NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, uid, email, name, password_hash, created_at, updated_at
	`

	var customer models.Customer
	if err := r.db.GetContext(ctx, &customer, query, uuid.NewString(), uuid.NewString(), email); err != nil {
		return nil, fmt.Errorf("failed to find or create customer: %w", err)
	}
	return &customer, nil
}

// GetCustomerByID retrieves a customer by primary key
func (r *PaymentRepo) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT id, uid, email, name, password_hash, created_at, updated_at FROM customers WHERE id = $1`

	var customer models.Customer
	if err := r.db.GetContext(ctx, &customer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// StoreSignupToken lets a guest buyer claim their account from the receipt
func (r *PaymentRepo) StoreSignupToken(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeySignupToken, token), email, ttl); err != nil {
		return fmt.Errorf("failed to store signup token: %w", err)
	}
	return nil
}
