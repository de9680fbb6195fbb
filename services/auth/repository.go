package auth

import (
	"context"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/socialclub/services/auth AuthRepo

// AuthRepo defines the auth persistence operations
type AuthRepo interface {
	// One-time codes
	StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error

	// Signup tokens and password resets
	GetSignupToken(ctx context.Context, token string) (string, error)
	DeleteSignupToken(ctx context.Context, token string) error
	StorePasswordReset(ctx context.Context, reset *models.PasswordReset, ttl time.Duration) error
	GetPasswordReset(ctx context.Context, uid string) (*models.PasswordReset, error)
	DeletePasswordReset(ctx context.Context, reset *models.PasswordReset) error

	// Customers
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	SetPasswordHash(ctx context.Context, customerID, hash string) error
	UpdatePasswordHash(ctx context.Context, customerID, hash string) error
}
