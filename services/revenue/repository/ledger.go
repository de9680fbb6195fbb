package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/revenue"
)

const transactionColumns = `id, uid, object_id, status, amount, gateway_fee, net_after_fee,
	affiliate_fee, merchant_after_fee, customer_id, product_id, merchant_id,
	option_id, affiliate_id, affiliate_customer_id, created_at, updated_at`

// ListPaidTransactions returns the PAID transactions matching filter, oldest payment first
func (r *RevenueRepo) ListPaidTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	conds := []string{"status = $1"}
	args := []interface{}{models.TransactionStatusPaid}

	add := func(column, value string) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.MerchantID != "" {
		add("merchant_id", filter.MerchantID)
	}
	if filter.ProductID != "" {
		add("product_id", filter.ProductID)
	}
	if filter.AffiliateCustomerID != "" {
		add("affiliate_customer_id", filter.AffiliateCustomerID)
	}
	if filter.AffiliateOnly {
		conds = append(conds, "affiliate_id IS NOT NULL")
	}

	query := "SELECT " + transactionColumns + " FROM transactions WHERE " +
		strings.Join(conds, " AND ") + " ORDER BY updated_at"

	var txns []*models.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list paid transactions: %w", err)
	}
	return txns, nil
}

// GetMerchantByCustomer returns the store owned by a customer
func (r *RevenueRepo) GetMerchantByCustomer(ctx context.Context, customerID string) (*models.Merchant, error) {
	query := `SELECT id, customer_id, store_name, created_at FROM merchants WHERE customer_id = $1`

	var merchant models.Merchant
	if err := r.db.GetContext(ctx, &merchant, query, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, revenue.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

// GetAffiliateCustomerByCustomer returns the affiliate profile of a customer
func (r *RevenueRepo) GetAffiliateCustomerByCustomer(ctx context.Context, customerID string) (*models.AffiliateCustomer, error) {
	query := `SELECT id, customer_id, created_at FROM affiliate_customers WHERE customer_id = $1`

	var ac models.AffiliateCustomer
	if err := r.db.GetContext(ctx, &ac, query, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, revenue.ErrAffiliateCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate customer: %w", err)
	}
	return &ac, nil
}

// GetProduct returns a product without its options
func (r *RevenueRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, uid, merchant_id, title, description, summary, price, limit_customer, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	if err := r.db.GetContext(ctx, &product, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, revenue.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}
