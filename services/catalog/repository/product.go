package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/catalog"
)

const productColumns = `id, uid, merchant_id, title, description, summary, price, limit_customer, created_at, updated_at`

// CreateProduct stores a product and its options in one transaction
func (r *CatalogRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (
			id, uid, merchant_id, title, description, summary, price, limit_customer,
			created_at, updated_at
		) VALUES (:id, :uid, :merchant_id, :title, :description, :summary, :price, :limit_customer,
			:created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	for i := range product.Options {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO options (id, product_id, price, duration, type, created_at)
			VALUES (:id, :product_id, :price, :duration, :type, :created_at)
		`, &product.Options[i])
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetProduct retrieves a product with its options
func (r *CatalogRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return r.getProduct(ctx, "id", productID)
}

// GetProductByUID retrieves a product with its options by public id
func (r *CatalogRepo) GetProductByUID(ctx context.Context, uid string) (*models.Product, error) {
	return r.getProduct(ctx, "uid", uid)
}

func (r *CatalogRepo) getProduct(ctx context.Context, field, value string) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s = $1`, productColumns, field)

	var product models.Product
	if err := r.db.GetContext(ctx, &product, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Options = []models.Option{}
	optionsQuery := `
		SELECT id, product_id, price, duration, type, created_at
		FROM options
		WHERE product_id = $1
		ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &product.Options, optionsQuery, product.ID); err != nil {
		return nil, fmt.Errorf("failed to get product options: %w", err)
	}
	return &product, nil
}

// ListProductsByMerchant returns a merchant's products with their options, oldest first
func (r *CatalogRepo) ListProductsByMerchant(ctx context.Context, merchantID string) ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE merchant_id = $1 ORDER BY created_at`, productColumns)

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, query, merchantID); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	optionsQuery := `
		SELECT o.id, o.product_id, o.price, o.duration, o.type, o.created_at
		FROM options o
		JOIN products p ON p.id = o.product_id
		WHERE p.merchant_id = $1
		ORDER BY o.created_at
	`
	var options []models.Option
	if err := r.db.SelectContext(ctx, &options, optionsQuery, merchantID); err != nil {
		return nil, fmt.Errorf("failed to list product options: %w", err)
	}

	byProduct := make(map[string][]models.Option, len(products))
	for _, o := range options {
		byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
	}
	for i := range products {
		products[i].Options = byProduct[products[i].ID]
		if products[i].Options == nil {
			products[i].Options = []models.Option{}
		}
	}
	return products, nil
}
