package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a purchase
type TransactionStatus string

const (
	TransactionStatusNew  TransactionStatus = "NEW"
	TransactionStatusPaid TransactionStatus = "PAID"
)

// CanTransitionTo reports whether a transaction in status s may move to next.
// NEW -> PAID is the only allowed transition.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == TransactionStatusNew && next == TransactionStatusPaid
}

// Transaction is one purchase attempt. Fee fields are fixed at creation.
type Transaction struct {
	ID                  string            `json:"id" db:"id"`
	UID                 string            `json:"uid" db:"uid"`
	ObjectID            string            `json:"objectId" db:"object_id"`
	Status              TransactionStatus `json:"status" db:"status"`
	Amount              decimal.Decimal   `json:"amount" db:"amount"`
	GatewayFee          decimal.Decimal   `json:"gatewayFee" db:"gateway_fee"`
	NetAfterFee         decimal.Decimal   `json:"netAfterFee" db:"net_after_fee"`
	AffiliateFee        decimal.Decimal   `json:"affiliateFee" db:"affiliate_fee"`
	MerchantAfterFee    decimal.Decimal   `json:"merchantAfterFee" db:"merchant_after_fee"`
	CustomerID          string            `json:"customerId" db:"customer_id"`
	ProductID           string            `json:"productId" db:"product_id"`
	MerchantID          string            `json:"merchantId" db:"merchant_id"`
	OptionID            *string           `json:"optionId,omitempty" db:"option_id"`
	AffiliateID         *string           `json:"affiliateId,omitempty" db:"affiliate_id"`
	AffiliateCustomerID *string           `json:"affiliateCustomerId,omitempty" db:"affiliate_customer_id"`
	CreatedAt           time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time         `json:"updatedAt" db:"updated_at"`
}

// IsAffiliate reports whether the sale was referred by an affiliate link
func (t *Transaction) IsAffiliate() bool {
	return t.AffiliateID != nil && *t.AffiliateID != ""
}

// IsPaid reports whether the transaction has been settled
func (t *Transaction) IsPaid() bool {
	return t.Status == TransactionStatusPaid
}

// TransactionFilter narrows the PAID ledger rows fed to the revenue aggregator
type TransactionFilter struct {
	MerchantID          string
	ProductID           string
	AffiliateCustomerID string
	AffiliateOnly       bool
}

// TransactionStatusView is returned when a client polls a transaction
type TransactionStatusView struct {
	ID        string            `json:"id"`
	UID       string            `json:"uid"`
	Status    TransactionStatus `json:"status"`
	Amount    decimal.Decimal   `json:"amount"`
	CreatedAt time.Time         `json:"createdAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Expired   bool              `json:"expired"`
}

// CreateInvoiceRequest is the payload for a direct purchase
type CreateInvoiceRequest struct {
	ProductID string `json:"productId"`
	OptionID  string `json:"optionId,omitempty"`
	Email     string `json:"email"`
}

// CreateAffiliateInvoiceRequest is the payload for a purchase through an affiliate link
type CreateAffiliateInvoiceRequest struct {
	AffiliateUID string `json:"affiliateId"`
	OptionID     string `json:"optionId,omitempty"`
	Email        string `json:"email"`
}

// InvoiceResult is returned after a transaction and its gateway invoice were created
type InvoiceResult struct {
	Transaction *Transaction `json:"transaction"`
	Invoice     *Invoice     `json:"invoice"`
}

// PaymentMode selects which callback confirmed a payment
type PaymentMode string

const (
	PaymentModeSimple    PaymentMode = "simple"
	PaymentModeAffiliate PaymentMode = "affiliate"
)
