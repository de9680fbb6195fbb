package auth

import (
	"context"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/auth AuthUC

// AuthUC handles customer registration and token issuance
type AuthUC interface {
	SendOTP(ctx context.Context, email string) (time.Time, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, customerID string) (*models.AuthResponse, error)
	Me(ctx context.Context, customerID string) (*models.Customer, error)
	CheckSignupToken(ctx context.Context, token, email string) error
	ForgotPassword(ctx context.Context, email string) (time.Time, error)
	GetPasswordReset(ctx context.Context, uid string) (*models.PasswordReset, error)
	ResetPassword(ctx context.Context, uid, newPassword string) (*models.AuthResponse, error)
}
