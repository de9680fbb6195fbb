package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/auth"
	"github.com/piresc/socialclub/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body, customerID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if customerID != "" {
		c.Set(middleware.ContextCustomerID, customerID)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestSendOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)
	c, rec := newContext(http.MethodPost, `{"email":"buyer@example.com"}`, "")

	expiresAt := time.Date(2024, 3, 4, 12, 2, 0, 0, time.UTC)
	mockUC.EXPECT().SendOTP(gomock.Any(), "buyer@example.com").Return(expiresAt, nil)

	require.NoError(t, h.SendOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)["body"].(map[string]interface{})
	assert.Equal(t, "2024-03-04T12:02:00Z", body["expiresAt"])
}

func TestSignup(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
		c, rec := newContext(http.MethodPost, `{"email":"buyer@example.com","password":"s3cret-pass"}`, "")

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OTP code is required", decode(t, rec)["message"])
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAuthUC(ctrl)
		h := NewAuthHandler(mockUC)
		c, rec := newContext(http.MethodPost, `{"email":"buyer@example.com","password":"s3cret-pass","otpCode":"123456"}`, "")

		mockUC.EXPECT().Signup(gomock.Any(), &models.SignupRequest{
			Email:    "buyer@example.com",
			Password: "s3cret-pass",
			OTPCode:  "123456",
		}).Return(&models.AuthResponse{AccessToken: "a", RefreshToken: "r", CustomerID: "c-1"}, nil)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)["body"].(map[string]interface{})
		assert.Equal(t, "c-1", body["customerId"])
		assert.Equal(t, "a", body["accessToken"])
	})
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"wrong password", auth.ErrInvalidCredentials, http.StatusUnauthorized, "password does not match"},
		{"guest account", auth.ErrSignupRequired, http.StatusBadRequest, "password not set, sign up first"},
		{"unknown email", auth.ErrCustomerNotFound, http.StatusNotFound, "customer not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAuthUC(ctrl)
			h := NewAuthHandler(mockUC)
			c, rec := newContext(http.MethodPost, `{"email":"buyer@example.com","password":"x"}`, "")

			mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			require.NoError(t, h.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["message"])
		})
	}
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	c, rec := newContext(http.MethodPost, "", "")
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newContext(http.MethodPost, "", "c-1")
	mockUC.EXPECT().Refresh(gomock.Any(), "c-1").Return(&models.AuthResponse{CustomerID: "c-1"}, nil)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)
	c, rec := newContext(http.MethodGet, "", "c-1")

	mockUC.EXPECT().Me(gomock.Any(), "c-1").Return(&models.Customer{ID: "c-1", Email: "buyer@example.com", PasswordHash: "secret"}, nil)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	customer := decode(t, rec)["body"].(map[string]interface{})["customer"].(map[string]interface{})
	assert.Equal(t, "buyer@example.com", customer["email"])
}

func TestCheckSignupToken(t *testing.T) {
	tests := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{"valid", nil, http.StatusOK},
		{"unknown token", auth.ErrSignupTokenNotFound, http.StatusNotFound},
		{"other email", auth.ErrSignupTokenMismatch, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAuthUC(ctrl)
			h := NewAuthHandler(mockUC)
			c, rec := newContext(http.MethodGet, "", "")
			c.SetParamNames("token", "email")
			c.SetParamValues("tok", "buyer@example.com")

			mockUC.EXPECT().CheckSignupToken(gomock.Any(), "tok", "buyer@example.com").Return(tt.ucErr)

			require.NoError(t, h.CheckSignupToken(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)
	c, rec := newContext(http.MethodPost, `{"email":"buyer@example.com"}`, "")

	expiresAt := time.Date(2024, 3, 4, 12, 5, 0, 0, time.UTC)
	mockUC.EXPECT().ForgotPassword(gomock.Any(), "buyer@example.com").Return(expiresAt, nil)

	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)["body"].(map[string]interface{})
	assert.Equal(t, "2024-03-04T12:05:00Z", body["expiresAt"])
	assert.NotContains(t, body, "link")
}

func TestPasswordReset(t *testing.T) {
	t.Run("expired link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAuthUC(ctrl)
		h := NewAuthHandler(mockUC)
		c, rec := newContext(http.MethodGet, "", "")
		c.SetParamNames("uid")
		c.SetParamValues("r-1")

		mockUC.EXPECT().GetPasswordReset(gomock.Any(), "r-1").Return(nil, auth.ErrPasswordResetNotFound)

		require.NoError(t, h.GetPasswordReset(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("live link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAuthUC(ctrl)
		h := NewAuthHandler(mockUC)
		c, rec := newContext(http.MethodGet, "", "")
		c.SetParamNames("uid")
		c.SetParamValues("r-1")

		mockUC.EXPECT().GetPasswordReset(gomock.Any(), "r-1").Return(&models.PasswordReset{UID: "r-1", Email: "buyer@example.com"}, nil)

		require.NoError(t, h.GetPasswordReset(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)["body"].(map[string]interface{})
		assert.Equal(t, "buyer@example.com", body["email"])
	})

	t.Run("new password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAuthUC(ctrl)
		h := NewAuthHandler(mockUC)
		c, rec := newContext(http.MethodPost, `{"newPassword":"new-password"}`, "")
		c.SetParamNames("uid")
		c.SetParamValues("r-1")

		mockUC.EXPECT().ResetPassword(gomock.Any(), "r-1", "new-password").
			Return(&models.AuthResponse{CustomerID: "c-1", AccessToken: "a", RefreshToken: "r"}, nil)

		require.NoError(t, h.ResetPassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)["body"].(map[string]interface{})
		assert.Equal(t, "a", body["accessToken"])
	})

	t.Run("weak password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAuthUC(ctrl)
		h := NewAuthHandler(mockUC)
		c, rec := newContext(http.MethodPost, `{"newPassword":"short"}`, "")
		c.SetParamNames("uid")
		c.SetParamValues("r-1")

		mockUC.EXPECT().ResetPassword(gomock.Any(), "r-1", "short").Return(nil, auth.ErrWeakPassword)

		require.NoError(t, h.ResetPassword(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
