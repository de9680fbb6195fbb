package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/auth"
)

// AuthHandler handles registration, login and the customer profile
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles POST /otp/send
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	expiresAt, err := h.authUC.SendOTP(c.Request().Context(), req.Email)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{
		"expiresAt": expiresAt,
	})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.OTPCode == "" {
		return utils.BadRequestResponse(c, "OTP code is required")
	}

	resp, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.SetCustomerID(c, resp.CustomerID)
	return utils.SuccessResponse(c, http.StatusOK, "success", resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.SetCustomerID(c, resp.CustomerID)
	return utils.SuccessResponse(c, http.StatusOK, "success", resp)
}

// Refresh handles POST /auth/refresh-token
func (h *AuthHandler) Refresh(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	resp, err := h.authUC.Refresh(c.Request().Context(), customerID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", resp)
}

// Me handles GET /customer
func (h *AuthHandler) Me(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	customer, err := h.authUC.Me(c.Request().Context(), customerID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"customer": customer})
}

// CheckSignupToken handles GET /auth/signup/token/:token/:email
func (h *AuthHandler) CheckSignupToken(c echo.Context) error {
	if err := h.authUC.CheckSignupToken(c.Request().Context(), c.Param("token"), c.Param("email")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", true)
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	expiresAt, err := h.authUC.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{
		"expiresAt": expiresAt,
	})
}

// GetPasswordReset handles GET /auth/password-reset/:uid
func (h *AuthHandler) GetPasswordReset(c echo.Context) error {
	reset, err := h.authUC.GetPasswordReset(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", reset)
}

// ResetPassword handles POST /auth/password-reset/:uid
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.authUC.ResetPassword(c.Request().Context(), c.Param("uid"), req.NewPassword)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.SetCustomerID(c, resp.CustomerID)
	return utils.SuccessResponse(c, http.StatusOK, "success", resp)
}
