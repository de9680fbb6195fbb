package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasePaidEvent is published after a transaction becomes PAID
type PurchasePaidEvent struct {
	TransactionID string          `json:"transactionId"`
	CustomerEmail string          `json:"customerEmail"`
	ProductID     string          `json:"productId"`
	ProductTitle  string          `json:"productTitle"`
	Amount        decimal.Decimal `json:"amount"`
	AffiliateID   string          `json:"affiliateId,omitempty"`
	PaidAt        time.Time       `json:"paidAt"`
	SignupURL     string          `json:"signupUrl,omitempty"`
}

// AffiliateCreatedEvent is published after affiliate links were granted
type AffiliateCreatedEvent struct {
	Email string   `json:"email"`
	Links []string `json:"links"`
}

// OTPRequestedEvent is published when a signup code was issued
type OTPRequestedEvent struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PasswordResetRequestedEvent is published when a reset link was issued
type PasswordResetRequestedEvent struct {
	Email     string    `json:"email"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expiresAt"`
}
