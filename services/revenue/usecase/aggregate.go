package usecase

import (
	"sort"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// AggregateOptions parameterises a report
type AggregateOptions struct {
	Scope    models.RevenueScope
	ScopeID  string
	Location *time.Location
	Now      time.Time
}

type tally struct {
	revenue   decimal.Decimal
	sales     int
	customers map[string]struct{}
}

func newTally() *tally {
	return &tally{customers: map[string]struct{}{}}
}

func (t *tally) add(amount decimal.Decimal, customerID string) {
	t.revenue = t.revenue.Add(amount)
	t.sales++
	t.customers[customerID] = struct{}{}
}

// Aggregate folds PAID transactions into a report. Transactions in any other
// status are ignored. Every entity is listed in the breakdown even without sales.
func Aggregate(txns []*models.Transaction, entities []models.RevenueEntity, opts AggregateOptions) *models.RevenueReport {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	total := newTally()
	payout := decimal.Zero
	commission := decimal.Zero

	byEntity := make(map[string]*tally, len(entities))
	for _, e := range entities {
		byEntity[e.ID] = newTally()
	}
	var unlisted []string

	daily := map[string]*tally{}
	weekly := map[string]*tally{}
	monthly := map[string]*tally{}

	for _, tx := range txns {
		if tx == nil || tx.Status != models.TransactionStatusPaid {
			continue
		}
		if opts.Scope == models.ScopeAffiliateMerchant && !tx.IsAffiliate() {
			continue
		}

		amount := measure(opts.Scope, tx)
		total.add(amount, tx.CustomerID)
		payout = payout.Add(tx.MerchantAfterFee)
		commission = commission.Add(tx.AffiliateFee)

		if id, ok := entityOf(opts.Scope, tx); ok {
			t, found := byEntity[id]
			if !found {
				t = newTally()
				byEntity[id] = t
				unlisted = append(unlisted, id)
			}
			t.add(amount, tx.CustomerID)
		}

		paidAt := tx.UpdatedAt.In(loc)
		bucket(daily, models.DayBucket(paidAt)).add(amount, tx.CustomerID)
		bucket(weekly, models.WeekBucket(paidAt)).add(amount, tx.CustomerID)
		bucket(monthly, models.MonthBucket(paidAt)).add(amount, tx.CustomerID)
	}

	breakdown := make([]models.EntityRevenue, 0, len(entities)+len(unlisted))
	for _, e := range entities {
		breakdown = append(breakdown, entityRevenue(e.ID, e.Label, byEntity[e.ID]))
	}
	sort.Strings(unlisted)
	for _, id := range unlisted {
		breakdown = append(breakdown, entityRevenue(id, id, byEntity[id]))
	}

	return &models.RevenueReport{
		Scope:           opts.Scope,
		ScopeID:         opts.ScopeID,
		TotalRevenue:    money.ToDisplay(total.revenue),
		TotalPayout:     money.ToDisplay(payout),
		TotalCommission: money.ToDisplay(commission),
		TotalSales:      total.sales,
		UniqueCustomers: len(total.customers),
		Breakdown:       breakdown,
		Daily:           series(daily),
		Weekly:          series(weekly),
		Monthly:         series(monthly),
		GeneratedAt:     opts.Now,
	}
}

// measure is the amount a transaction contributes to the scope's revenue
func measure(scope models.RevenueScope, tx *models.Transaction) decimal.Decimal {
	if scope == models.ScopeAffiliateOwn {
		return tx.AffiliateFee
	}
	return tx.NetAfterFee
}

func entityOf(scope models.RevenueScope, tx *models.Transaction) (string, bool) {
	switch scope {
	case models.ScopeMerchantPayout, models.ScopeMerchantProducts:
		return tx.ProductID, true
	default:
		if !tx.IsAffiliate() {
			return "", false
		}
		return *tx.AffiliateID, true
	}
}

func bucket(m map[string]*tally, key string) *tally {
	t, ok := m[key]
	if !ok {
		t = newTally()
		m[key] = t
	}
	return t
}

func entityRevenue(id, label string, t *tally) models.EntityRevenue {
	return models.EntityRevenue{
		ID:              id,
		Label:           label,
		Revenue:         money.ToDisplay(t.revenue),
		Sales:           t.sales,
		UniqueCustomers: len(t.customers),
	}
}

func series(m map[string]*tally) []models.BucketRevenue {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.BucketRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.BucketRevenue{
			Bucket:  k,
			Revenue: money.ToDisplay(m[k].revenue),
			Sales:   m[k].sales,
		})
	}
	return out
}
