package models

import "time"

// RevenueScope identifies which slice of the ledger a report covers
type RevenueScope string

const (
	ScopeMerchantPayout    RevenueScope = "merchant_payout"
	ScopeMerchantProducts  RevenueScope = "merchant_products"
	ScopeAffiliateOwn      RevenueScope = "affiliate_own"
	ScopeAffiliateMerchant RevenueScope = "affiliate_merchant"
	ScopeProduct           RevenueScope = "product"
)

// RevenueEntity is a product or affiliate listed in a report breakdown
type RevenueEntity struct {
	ID    string `json:"id" db:"id"`
	Label string `json:"label" db:"label"`
}

// RevenueReport is the cached dashboard projection
type RevenueReport struct {
	Scope           RevenueScope    `json:"scope"`
	ScopeID         string          `json:"scopeId"`
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalPayout     float64         `json:"totalPayout"`
	TotalCommission float64         `json:"totalCommission"`
	TotalSales      int             `json:"totalSales"`
	UniqueCustomers int             `json:"uniqueCustomers"`
	Breakdown       []EntityRevenue `json:"breakdown"`
	Daily           []BucketRevenue `json:"daily"`
	Weekly          []BucketRevenue `json:"weekly"`
	Monthly         []BucketRevenue `json:"monthly"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// EntityRevenue is the revenue attributed to one product or affiliate
type EntityRevenue struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	Revenue         float64 `json:"revenue"`
	Sales           int     `json:"sales"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

// BucketRevenue is the revenue of one day, ISO week or month
type BucketRevenue struct {
	Bucket  string  `json:"bucket"`
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}
