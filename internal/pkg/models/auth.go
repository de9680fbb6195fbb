package models

import "time"

// OTP is a one-time code sent to an email address
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SendOTPRequest asks for a signup code
type SendOTPRequest struct {
	Email string `json:"email"`
}

// SignupRequest registers a customer with the code it received
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	OTPCode  string `json:"otpCode"`
	Token    string `json:"token,omitempty"`
}

// LoginRequest authenticates with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest asks for a password reset link
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest sets a new password through a reset link
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// PasswordReset is a pending password reset link
type PasswordReset struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	CustomerID   string    `json:"customerId"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Claims is the authenticated identity carried by a token
type Claims struct {
	CustomerID string
	Email      string
	Refresh    bool
}
