package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/revenue"
	"github.com/piresc/socialclub/services/revenue/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*RevenueUC, *mocks.MockRevenueRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRevenueRepo(ctrl)
	cfg := &models.Config{Commerce: models.CommerceConfig{ReportTimezone: "Asia/Ulaanbaatar"}}
	uc := NewRevenueUC(repo, cfg)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func decodeReport(t *testing.T, data []byte) models.RevenueReport {
	var report models.RevenueReport
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

func TestNewRevenueUC_UnknownTimezone(t *testing.T) {
	uc := NewRevenueUC(nil, &models.Config{Commerce: models.CommerceConfig{ReportTimezone: "Mars/Olympus"}})
	assert.Equal(t, time.UTC, uc.loc)
}

func TestGetReport_CacheHitReturnsVerbatim(t *testing.T) {
	uc, repo := newTestUC(t)
	cached := []byte(`{"scope":"merchant_payout","totalRevenue":42}`)

	repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil)
	repo.EXPECT().GetCachedReport(gomock.Any(), "payoutMerchant:m-1").Return(cached, true, nil)

	data, err := uc.GetReport(context.Background(), models.ScopeMerchantPayout, "c-1", "")

	require.NoError(t, err)
	assert.Equal(t, string(cached), string(data))
}

func TestGetReport_CacheMissComputesAndStores(t *testing.T) {
	uc, repo := newTestUC(t)
	txns := []*models.Transaction{{
		ID:               "t-1",
		Status:           models.TransactionStatusPaid,
		CustomerID:       "buyer",
		ProductID:        "p-1",
		NetAfterFee:      decimal.NewFromInt(9900),
		MerchantAfterFee: decimal.NewFromInt(9900),
		UpdatedAt:        fixedNow,
	}}

	gomock.InOrder(
		repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil),
		repo.EXPECT().GetCachedReport(gomock.Any(), "productRevenueMerchant:m-1").Return(nil, false, nil),
		repo.EXPECT().ListPaidTransactions(gomock.Any(), models.TransactionFilter{MerchantID: "m-1"}).Return(txns, nil),
		repo.EXPECT().ListMerchantProducts(gomock.Any(), "m-1").Return([]models.RevenueEntity{{ID: "p-1", Label: "Course"}}, nil),
		repo.EXPECT().SetCachedReport(gomock.Any(), "productRevenueMerchant:m-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte) error {
				assert.Equal(t, 9900.0, decodeReport(t, data).TotalRevenue)
				return nil
			}),
	)

	data, err := uc.GetReport(context.Background(), models.ScopeMerchantProducts, "c-1", "")

	require.NoError(t, err)
	report := decodeReport(t, data)
	assert.Equal(t, models.ScopeMerchantProducts, report.Scope)
	assert.Equal(t, "m-1", report.ScopeID)
	assert.Equal(t, 1, report.TotalSales)
	assert.True(t, fixedNow.Equal(report.GeneratedAt))
}

func TestGetReport_CacheFailuresAreNotFatal(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetAffiliateCustomerByCustomer(gomock.Any(), "c-1").Return(&models.AffiliateCustomer{ID: "ac-1"}, nil)
	repo.EXPECT().GetCachedReport(gomock.Any(), "affiliateOwnRevenue:ac-1").Return(nil, false, errors.New("connection refused"))
	repo.EXPECT().ListPaidTransactions(gomock.Any(), models.TransactionFilter{AffiliateCustomerID: "ac-1"}).Return(nil, nil)
	repo.EXPECT().ListAffiliatesByCustomer(gomock.Any(), "ac-1").Return(nil, nil)
	repo.EXPECT().SetCachedReport(gomock.Any(), "affiliateOwnRevenue:ac-1", gomock.Any()).Return(errors.New("connection refused"))

	data, err := uc.GetReport(context.Background(), models.ScopeAffiliateOwn, "c-1", "")

	require.NoError(t, err)
	assert.Equal(t, models.ScopeAffiliateOwn, decodeReport(t, data).Scope)
}

func TestGetReport_AffiliateMerchantFiltersAffiliateSales(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil)
	repo.EXPECT().GetCachedReport(gomock.Any(), "affiliateMerchantRevenue:m-1").Return(nil, false, nil)
	repo.EXPECT().ListPaidTransactions(gomock.Any(), models.TransactionFilter{MerchantID: "m-1", AffiliateOnly: true}).Return(nil, nil)
	repo.EXPECT().ListAffiliatesByMerchant(gomock.Any(), "m-1").Return(nil, nil)
	repo.EXPECT().SetCachedReport(gomock.Any(), "affiliateMerchantRevenue:m-1", gomock.Any()).Return(nil)

	_, err := uc.GetReport(context.Background(), models.ScopeAffiliateMerchant, "c-1", "")
	require.NoError(t, err)
}

func TestGetReport_NoMerchantReturnsEmptyReport(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(nil, revenue.ErrMerchantNotFound)

	data, err := uc.GetReport(context.Background(), models.ScopeMerchantPayout, "c-1", "")

	require.NoError(t, err)
	report := decodeReport(t, data)
	assert.Zero(t, report.TotalRevenue)
	assert.Empty(t, report.Breakdown)
}

func TestGetReport_Product(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mocks.MockRevenueRepo)
		wantErr error
	}{
		{
			name: "owner",
			setup: func(repo *mocks.MockRevenueRepo) {
				repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(&models.Product{ID: "p-1", MerchantID: "m-1"}, nil)
				repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil)
				repo.EXPECT().GetCachedReport(gomock.Any(), "productRevenue:p-1").Return([]byte(`{}`), true, nil)
			},
		},
		{
			name: "product of another merchant",
			setup: func(repo *mocks.MockRevenueRepo) {
				repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(&models.Product{ID: "p-1", MerchantID: "m-2"}, nil)
				repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil)
			},
			wantErr: revenue.ErrProductNotOwned,
		},
		{
			name: "caller has no store",
			setup: func(repo *mocks.MockRevenueRepo) {
				repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(&models.Product{ID: "p-1", MerchantID: "m-2"}, nil)
				repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(nil, revenue.ErrMerchantNotFound)
			},
			wantErr: revenue.ErrProductNotOwned,
		},
		{
			name: "unknown product",
			setup: func(repo *mocks.MockRevenueRepo) {
				repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(nil, revenue.ErrProductNotFound)
			},
			wantErr: revenue.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUC(t)
			tt.setup(repo)

			_, err := uc.GetReport(context.Background(), models.ScopeProduct, "c-1", "p-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetReport_LedgerError(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetMerchantByCustomer(gomock.Any(), "c-1").Return(&models.Merchant{ID: "m-1"}, nil)
	repo.EXPECT().GetCachedReport(gomock.Any(), "payoutMerchant:m-1").Return(nil, false, nil)
	repo.EXPECT().ListPaidTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.GetReport(context.Background(), models.ScopeMerchantPayout, "c-1", "")

	assert.Error(t, err)
}

func TestGetReport_UnknownScope(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.GetReport(context.Background(), "weekly", "c-1", "")

	assert.ErrorIs(t, err, revenue.ErrUnknownScope)
}
