package auth

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrInvalidEmail       = apperror.BadRequest("a valid email is required")
	ErrWeakPassword       = apperror.BadRequest("password must be at least 8 characters")
	ErrOTPExpired         = apperror.BadRequest("otp expired, request a new one")
	ErrOTPMismatch        = apperror.BadRequest("otp does not match")
	ErrCustomerNotFound   = apperror.NotFound("customer not found")
	ErrEmailTaken         = apperror.New(apperror.KindConflict, "email already registered")
	ErrSignupRequired     = apperror.New(apperror.KindPreconditionFailed, "password not set, sign up first")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "password does not match")

	ErrSignupTokenNotFound   = apperror.NotFound("signup token not found")
	ErrSignupTokenMismatch   = apperror.BadRequest("email does not match the signup token")
	ErrPasswordResetNotFound = apperror.NotFound("password reset link not found or expired")
)
