package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/catalog"
)

// FindOrCreateMerchant returns the merchant owned by customerID and whether it was just created
func (r *CatalogRepo) FindOrCreateMerchant(ctx context.Context, customerID, storeName string) (*models.Merchant, bool, error) {
	// xmax is 0 only for a freshly inserted row
	query := `
		INSERT INTO merchants (id, customer_id, store_name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id, customer_id, store_name, created_at, (xmax = 0) AS inserted
	`

	var row struct {
		models.Merchant
		Inserted bool `db:"inserted"`
	}
	err := r.db.GetContext(ctx, &row, query, uuid.NewString(), customerID, storeName, models.Now())
	if err != nil {
		return nil, false, fmt.Errorf("failed to find or create merchant: %w", err)
	}
	return &row.Merchant, row.Inserted, nil
}

// GetMerchant retrieves a merchant by primary key
func (r *CatalogRepo) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	query := `SELECT id, customer_id, store_name, created_at FROM merchants WHERE id = $1`

	var merchant models.Merchant
	if err := r.db.GetContext(ctx, &merchant, query, merchantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

// ListMerchantIDs returns every merchant id, oldest first
func (r *CatalogRepo) ListMerchantIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM merchants ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return ids, nil
}

// GetCachedMerchantList reads the cached merchant ids. A miss is not an error.
func (r *CatalogRepo) GetCachedMerchantList(ctx context.Context) ([]string, bool, error) {
	raw, err := r.redisClient.Get(ctx, constants.KeyMerchantList)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get merchant list cache: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false, fmt.Errorf("failed to decode merchant list cache: %w", err)
	}
	return ids, true, nil
}

// SetCachedMerchantList caches the merchant ids for TTLMerchantList
func (r *CatalogRepo) SetCachedMerchantList(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode merchant list: %w", err)
	}
	return r.redisClient.Set(ctx, constants.KeyMerchantList, data, constants.TTLMerchantList*time.Second)
}

// DropCachedMerchantList removes the cached merchant ids
func (r *CatalogRepo) DropCachedMerchantList(ctx context.Context) error {
	return r.redisClient.Delete(ctx, constants.KeyMerchantList)
}
