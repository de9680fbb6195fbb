package models

import "time"

// Customer is any registered person: buyer, merchant owner or affiliate
type Customer struct {
	ID           string    `json:"id" db:"id"`
	UID          string    `json:"uid" db:"uid"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// AffiliateCustomer wraps a customer acting as a referrer
type AffiliateCustomer struct {
	ID         string    `json:"id" db:"id"`
	CustomerID string    `json:"customerId" db:"customer_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
