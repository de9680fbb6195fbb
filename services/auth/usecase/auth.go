package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/socialclub/internal/pkg/jwt"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// Signup verifies the emailed code and sets the customer's password.
// Customers created by a guest checkout have no password yet and claim their
// account here, optionally with the signup token from their receipt; an
// account that already has one keeps it.
func (uc *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, auth.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, auth.ErrWeakPassword
	}

	if req.Token != "" {
		if err := uc.CheckSignupToken(ctx, req.Token, email); err != nil {
			return nil, err
		}
	}
	if err := uc.verifyOTP(ctx, email, req.OTPCode); err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, email)
	if err != nil && !errors.Is(err, auth.ErrCustomerNotFound) {
		return nil, err
	}

	switch {
	case customer == nil:
		hash, err := uc.hash(req.Password)
		if err != nil {
			return nil, err
		}
		now := uc.now()
		customer = &models.Customer{
			ID:           uuid.NewString(),
			UID:          uuid.NewString(),
			Email:        email,
			Name:         req.Name,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Customer registered", logger.String("customer_id", customer.ID))

	case customer.PasswordHash == "":
		hash, err := uc.hash(req.Password)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.SetPasswordHash(ctx, customer.ID, hash); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Customer claimed account", logger.String("customer_id", customer.ID))
	}

	if req.Token != "" {
		if err := uc.repo.DeleteSignupToken(ctx, req.Token); err != nil {
			logger.WarnCtx(ctx, "Failed to delete used signup token", logger.Err(err))
		}
	}

	return uc.issueTokens(customer)
}

// Login checks the password of a registered customer
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, auth.ErrInvalidEmail
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer.PasswordHash == "" {
		return nil, auth.ErrSignupRequired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		logger.InfoCtx(ctx, "Login rejected", logger.String("customer_id", customer.ID))
		return nil, auth.ErrInvalidCredentials
	}

	return uc.issueTokens(customer)
}

// Refresh exchanges a valid refresh token for a new token pair
func (uc *AuthUC) Refresh(ctx context.Context, customerID string) (*models.AuthResponse, error) {
	customer, err := uc.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return uc.issueTokens(customer)
}

// Me returns the authenticated customer
func (uc *AuthUC) Me(ctx context.Context, customerID string) (*models.Customer, error) {
	return uc.repo.GetCustomerByID(ctx, customerID)
}

func (uc *AuthUC) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (uc *AuthUC) issueTokens(customer *models.Customer) (*models.AuthResponse, error) {
	access, expiresAt, err := jwtpkg.GenerateAccessToken(customer.ID, customer.Email, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, _, err := jwtpkg.GenerateRefreshToken(customer.ID, customer.Email, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		CustomerID:   customer.ID,
		ExpiresAt:    expiresAt,
	}, nil
}
