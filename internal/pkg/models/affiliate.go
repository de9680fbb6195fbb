package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AffiliateStatusActive = "ACTIVE"
	AffiliateTypeDefault  = "AFFILIATE"
)

// Affiliate is a referral link for one product of one merchant
type Affiliate struct {
	ID                  string          `json:"id" db:"id"`
	UID                 string          `json:"uid" db:"uid"`
	Status              string          `json:"status" db:"status"`
	Type                string          `json:"type" db:"type"`
	Commission          decimal.Decimal `json:"commission" db:"commission"`
	Link                string          `json:"link" db:"link"`
	AffiliateCustomerID string          `json:"affiliateCustomerId" db:"affiliate_customer_id"`
	ProductID           string          `json:"productId" db:"product_id"`
	MerchantID          string          `json:"merchantId" db:"merchant_id"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
}

// AffiliateItem assigns a commission on one product
type AffiliateItem struct {
	ProductID  string          `json:"productId"`
	Commission decimal.Decimal `json:"commission"`
}

// CreateAffiliatesRequest grants an existing customer affiliate links
type CreateAffiliatesRequest struct {
	Email string          `json:"email"`
	List  []AffiliateItem `json:"list"`
}

// AffiliateDetail is an affiliate link with the product it sells
type AffiliateDetail struct {
	Affiliate
	Product *Product `json:"product"`
}

// CustomerCheck tells a merchant which of its products a customer already promotes
type CustomerCheck struct {
	Customer          *Customer `json:"customer"`
	AffiliatedProduct []string  `json:"affiliatedProducts"`
}

// AffiliateLink is one entry of an affiliate's link list
type AffiliateLink struct {
	UID       string `json:"uid" db:"uid"`
	ProductID string `json:"productId" db:"product_id"`
}
