package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a merchant-owned listing
type Product struct {
	ID            string          `json:"id" db:"id"`
	UID           string          `json:"uid" db:"uid"`
	MerchantID    string          `json:"merchantId" db:"merchant_id"`
	Title         string          `json:"title" db:"title"`
	Description   string          `json:"description" db:"description"`
	Summary       string          `json:"summary" db:"summary"`
	Price         decimal.Decimal `json:"price" db:"price"`
	LimitCustomer *int            `json:"limitCustomer,omitempty" db:"limit_customer"`
	Options       []Option        `json:"options" db:"-"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// HasCustomerLimit reports whether the product caps its number of buyers
func (p *Product) HasCustomerLimit() bool {
	return p.LimitCustomer != nil && *p.LimitCustomer > 0
}

// FindOption returns the option with the given id, or nil
func (p *Product) FindOption(optionID string) *Option {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// Option is a priced variant of a product
type Option struct {
	ID        string          `json:"id" db:"id"`
	ProductID string          `json:"productId" db:"product_id"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Duration  string          `json:"duration" db:"duration"`
	Type      string          `json:"type" db:"type"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// Merchant is a customer acting as a seller
type Merchant struct {
	ID         string    `json:"id" db:"id"`
	CustomerID string    `json:"customerId" db:"customer_id"`
	StoreName  string    `json:"storeName" db:"store_name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Store is a merchant together with its listings
type Store struct {
	Merchant *Merchant `json:"merchant"`
	Products []Product `json:"products"`
}

// OptionRequest describes one option in a product creation request
type OptionRequest struct {
	Price    decimal.Decimal `json:"price"`
	Duration string          `json:"duration"`
	Type     string          `json:"type"`
}

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	StoreName     string          `json:"storeName"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Summary       string          `json:"summary"`
	Price         decimal.Decimal `json:"price"`
	LimitCustomer *int            `json:"limitCustomer,omitempty"`
	Options       []OptionRequest `json:"options"`
}
