package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/database"
	jwtpkg "github.com/piresc/socialclub/internal/pkg/jwt"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtConfig = models.JWTConfig{Secret: "secret", AccessExpiration: 60, RefreshExpiration: 120, Issuer: "test"}

func protectedEcho(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = utils.HTTPErrorHandler
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"id": CustomerID(c), "email": CustomerEmail(c)})
	}, mw)
	return e
}

func TestJWTAuthMiddleware(t *testing.T) {
	access, _, err := jwtpkg.GenerateAccessToken("c-1", "owner@example.com", jwtConfig)
	require.NoError(t, err)
	refresh, _, err := jwtpkg.GenerateRefreshToken("c-1", "owner@example.com", jwtConfig)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid access token", "Bearer " + access, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + access, http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + refresh, http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := protectedEcho(JWTAuthMiddleware(jwtConfig))
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "c-1", body["id"])
				assert.Equal(t, "owner@example.com", body["email"])
			}
		})
	}
}

func TestJWTRefreshMiddleware(t *testing.T) {
	access, _, _ := jwtpkg.GenerateAccessToken("c-1", "owner@example.com", jwtConfig)
	refresh, _, _ := jwtpkg.GenerateRefreshToken("c-1", "owner@example.com", jwtConfig)
	e := protectedEcho(JWTRefreshMiddleware(jwtConfig))

	for token, want := range map[string]int{refresh: http.StatusOK, access: http.StatusUnauthorized} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}

func TestBasicAuthMiddleware(t *testing.T) {
	cfg := models.BasicAuthConfig{Username: "shop", Password: "s3cret"}
	e := protectedEcho(BasicAuthMiddleware(cfg))

	tests := []struct {
		name       string
		user, pass string
		wantStatus int
	}{
		{"valid", "shop", "s3cret", http.StatusOK},
		{"wrong password", "shop", "nope", http.StatusUnauthorized},
		{"wrong user", "other", "s3cret", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(tt.user+":"+tt.pass)))
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var body utils.Response
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.False(t, body.Success)
			}
		})
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	e := echo.New()
	e.POST("/otp/send", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(2, time.Minute, client))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/otp/send", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.True(t, mr.TTL("rate:ip:/otp/send:192.0.2.1") > 0)
}

func TestRateLimiterMiddleware_RedisDownFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	mr.Close()

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(1, time.Minute, client))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
