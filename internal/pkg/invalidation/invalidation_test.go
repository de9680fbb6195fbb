package invalidation

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, mr *miniredis.Miniredis, keys ...string) {
	for _, k := range keys {
		require.NoError(t, mr.Set(k, `{"cached":true}`))
	}
}

func TestOnTransactionPaid_Affiliate(t *testing.T) {
	client, mr := setupMockRedis(t)
	seed(t, mr,
		"payoutMerchant:m-1",
		"productRevenueMerchant:m-1",
		"productRevenue:p-1",
		"affiliateOwnRevenue:ac-1",
		"affiliateMerchantRevenue:m-1",
		"payoutMerchant:m-2",
		"productLimitCustomerCount:p-1",
	)

	NewPolicy(client).OnTransactionPaid(context.Background(), &models.Transaction{
		MerchantID:          "m-1",
		ProductID:           "p-1",
		AffiliateID:         strPtr("a-1"),
		AffiliateCustomerID: strPtr("ac-1"),
	})

	for _, k := range []string{"payoutMerchant:m-1", "productRevenueMerchant:m-1", "productRevenue:p-1", "affiliateOwnRevenue:ac-1", "affiliateMerchantRevenue:m-1"} {
		assert.False(t, mr.Exists(k), "%s should be dropped", k)
	}
	assert.True(t, mr.Exists("payoutMerchant:m-2"), "other merchants keep their cache")
	assert.True(t, mr.Exists("productLimitCustomerCount:p-1"), "counter is never invalidated")
}

func TestOnTransactionPaid_Direct(t *testing.T) {
	client, mr := setupMockRedis(t)
	seed(t, mr, "payoutMerchant:m-1", "affiliateMerchantRevenue:m-1")

	NewPolicy(client).OnTransactionPaid(context.Background(), &models.Transaction{MerchantID: "m-1", ProductID: "p-1"})

	assert.False(t, mr.Exists("payoutMerchant:m-1"))
	assert.True(t, mr.Exists("affiliateMerchantRevenue:m-1"))
}

func TestOnAffiliateCreated(t *testing.T) {
	client, mr := setupMockRedis(t)
	seed(t, mr, "affiliateOwnRevenue:ac-1", "affiliateMerchantRevenue:m-1", "productRevenue:p-1", "payoutMerchant:m-1")

	NewPolicy(client).OnAffiliateCreated(context.Background(), &models.Affiliate{
		AffiliateCustomerID: "ac-1",
		MerchantID:          "m-1",
		ProductID:           "p-1",
	})

	assert.False(t, mr.Exists("affiliateOwnRevenue:ac-1"))
	assert.False(t, mr.Exists("affiliateMerchantRevenue:m-1"))
	assert.False(t, mr.Exists("productRevenue:p-1"))
	assert.True(t, mr.Exists("payoutMerchant:m-1"))
}

func TestOnProductCreated(t *testing.T) {
	client, mr := setupMockRedis(t)
	seed(t, mr, "payoutMerchant:m-1", "productRevenueMerchant:m-1")

	NewPolicy(client).OnProductCreated(context.Background(), &models.Product{ID: "p-9", MerchantID: "m-1"})

	assert.False(t, mr.Exists("payoutMerchant:m-1"))
	assert.False(t, mr.Exists("productRevenueMerchant:m-1"))
}

func TestDeleteFailureIsSwallowed(t *testing.T) {
	client, mr := setupMockRedis(t)
	mr.Close()

	assert.NotPanics(t, func() {
		NewPolicy(client).OnProductCreated(context.Background(), &models.Product{MerchantID: "m-1"})
	})
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "payoutMerchant:m-1", CacheKey(models.ScopeMerchantPayout, "m-1"))
	assert.Equal(t, "productRevenueMerchant:m-1", CacheKey(models.ScopeMerchantProducts, "m-1"))
	assert.Equal(t, "affiliateOwnRevenue:ac-1", CacheKey(models.ScopeAffiliateOwn, "ac-1"))
	assert.Equal(t, "affiliateMerchantRevenue:m-1", CacheKey(models.ScopeAffiliateMerchant, "m-1"))
	assert.Equal(t, "productRevenue:p-1", CacheKey(models.ScopeProduct, "p-1"))
	assert.Empty(t, CacheKey("unknown", "x"))
}
