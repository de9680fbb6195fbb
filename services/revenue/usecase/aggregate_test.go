package usecase

import (
	"testing"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func paidTx(id, customer, product string, net, affiliateFee, merchant string, paidAt time.Time) *models.Transaction {
	return &models.Transaction{
		ID:               id,
		Status:           models.TransactionStatusPaid,
		CustomerID:       customer,
		ProductID:        product,
		MerchantID:       "m-1",
		NetAfterFee:      decimal.RequireFromString(net),
		AffiliateFee:     decimal.RequireFromString(affiliateFee),
		MerchantAfterFee: decimal.RequireFromString(merchant),
		UpdatedAt:        paidAt,
	}
}

func withAffiliate(tx *models.Transaction, affiliateID string) *models.Transaction {
	tx.AffiliateID = strPtr(affiliateID)
	tx.AffiliateCustomerID = strPtr("ac-1")
	return tx
}

func ulaanbaatar(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Ulaanbaatar")
	require.NoError(t, err)
	return loc
}

func TestAggregate_MerchantPayout(t *testing.T) {
	day := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	txns := []*models.Transaction{
		paidTx("t1", "c1", "p1", "9900", "0", "9900", day),
		withAffiliate(paidTx("t2", "c2", "p1", "9900", "1980", "7920", day), "a-1"),
		paidTx("t3", "c1", "p2", "0.1", "0", "0.1", day),
		paidTx("t4", "c1", "p2", "0.2", "0", "0.2", day),
		{ID: "t5", Status: models.TransactionStatusNew, ProductID: "p1", NetAfterFee: decimal.NewFromInt(5000)},
	}
	entities := []models.RevenueEntity{
		{ID: "p1", Label: "Course"},
		{ID: "p2", Label: "Ebook"},
		{ID: "p3", Label: "Unsold"},
	}

	report := Aggregate(txns, entities, AggregateOptions{Scope: models.ScopeMerchantPayout, ScopeID: "m-1", Location: time.UTC})

	assert.Equal(t, 19800.3, report.TotalRevenue)
	assert.Equal(t, 17820.3, report.TotalPayout)
	assert.Equal(t, 1980.0, report.TotalCommission)
	assert.Equal(t, 4, report.TotalSales)
	assert.Equal(t, 2, report.UniqueCustomers)

	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, models.EntityRevenue{ID: "p1", Label: "Course", Revenue: 19800, Sales: 2, UniqueCustomers: 2}, report.Breakdown[0])
	assert.Equal(t, 0.3, report.Breakdown[1].Revenue)
	assert.Equal(t, models.EntityRevenue{ID: "p3", Label: "Unsold"}, report.Breakdown[2])

	require.Len(t, report.Daily, 1)
	assert.Equal(t, "2024-03-04", report.Daily[0].Bucket)
	assert.Equal(t, "2024-W10", report.Weekly[0].Bucket)
	assert.Equal(t, "2024-03", report.Monthly[0].Bucket)
}

func TestAggregate_AffiliateOwnMeasuresCommission(t *testing.T) {
	day := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	txns := []*models.Transaction{
		withAffiliate(paidTx("t1", "c1", "p1", "9900", "1980", "7920", day), "a-1"),
		withAffiliate(paidTx("t2", "c2", "p2", "990", "99", "891", day), "a-2"),
	}
	entities := []models.RevenueEntity{{ID: "a-1", Label: "Course"}, {ID: "a-2", Label: "Ebook"}}

	report := Aggregate(txns, entities, AggregateOptions{Scope: models.ScopeAffiliateOwn, ScopeID: "ac-1"})

	assert.Equal(t, 2079.0, report.TotalRevenue)
	assert.Equal(t, 1980.0, report.Breakdown[0].Revenue)
	assert.Equal(t, 99.0, report.Breakdown[1].Revenue)
}

func TestAggregate_AffiliateMerchantSkipsDirectSales(t *testing.T) {
	day := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	txns := []*models.Transaction{
		paidTx("t1", "c1", "p1", "9900", "0", "9900", day),
		withAffiliate(paidTx("t2", "c2", "p1", "9900", "1980", "7920", day), "a-1"),
	}

	report := Aggregate(txns, []models.RevenueEntity{{ID: "a-1"}}, AggregateOptions{Scope: models.ScopeAffiliateMerchant, ScopeID: "m-1"})

	assert.Equal(t, 9900.0, report.TotalRevenue)
	assert.Equal(t, 1, report.TotalSales)
	assert.Equal(t, 1, report.Breakdown[0].Sales)
}

func TestAggregate_ProductBreakdownByAffiliate(t *testing.T) {
	day := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	txns := []*models.Transaction{
		paidTx("t1", "c1", "p1", "100", "0", "100", day),
		withAffiliate(paidTx("t2", "c2", "p1", "200", "20", "180", day), "a-9"),
	}

	report := Aggregate(txns, []models.RevenueEntity{{ID: "a-1", Label: "alice"}}, AggregateOptions{Scope: models.ScopeProduct, ScopeID: "p1"})

	assert.Equal(t, 300.0, report.TotalRevenue)
	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "a-1", report.Breakdown[0].ID)
	assert.Equal(t, 0, report.Breakdown[0].Sales)
	assert.Equal(t, "a-9", report.Breakdown[1].ID)
	assert.Equal(t, 200.0, report.Breakdown[1].Revenue)
}

func TestAggregate_BucketsUseReportTimezone(t *testing.T) {
	// 2024-12-31 20:00 UTC is 2025-01-01 04:00 in Ulaanbaatar (UTC+8)
	paidAt := time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 12, 30, 1, 0, 0, 0, time.UTC)
	txns := []*models.Transaction{
		paidTx("t1", "c1", "p1", "10", "0", "10", paidAt),
		paidTx("t2", "c1", "p1", "5", "0", "5", earlier),
	}

	report := Aggregate(txns, nil, AggregateOptions{Scope: models.ScopeMerchantProducts, Location: ulaanbaatar(t)})

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2024-12-30", report.Daily[0].Bucket)
	assert.Equal(t, "2025-01-01", report.Daily[1].Bucket)
	assert.Equal(t, 10.0, report.Daily[1].Revenue)

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2024-12", report.Monthly[0].Bucket)
	assert.Equal(t, "2025-01", report.Monthly[1].Bucket)

	// both fall in ISO week 1 of 2025
	require.Len(t, report.Weekly, 1)
	assert.Equal(t, "2025-W01", report.Weekly[0].Bucket)
	assert.Equal(t, 2, report.Weekly[0].Sales)
}

func TestAggregate_Empty(t *testing.T) {
	report := Aggregate(nil, []models.RevenueEntity{{ID: "p1", Label: "Course"}}, AggregateOptions{Scope: models.ScopeMerchantPayout, ScopeID: "m-1"})

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.UniqueCustomers)
	assert.Len(t, report.Breakdown, 1)
	assert.Empty(t, report.Daily)
	assert.NotNil(t, report.Daily)
}
