package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/socialclub/internal/pkg/jwt"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
)

const (
	ContextCustomerID = "customer_id"
	ContextEmail      = "customer_email"
)

// JWTAuthMiddleware authenticates a customer by bearer access token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return jwtAuth(config, false)
}

// JWTRefreshMiddleware accepts only refresh tokens, for the token exchange endpoint
func JWTRefreshMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return jwtAuth(config, true)
}

func jwtAuth(config models.JWTConfig, refresh bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.Refresh != refresh {
				return utils.UnauthorizedResponse(c, "Invalid token type")
			}

			c.Set(ContextCustomerID, claims.CustomerID)
			c.Set(ContextEmail, claims.Email)
			SetCustomerID(c, claims.CustomerID)

			return next(c)
		}
	}
}

// CustomerID returns the authenticated customer, empty when unauthenticated
func CustomerID(c echo.Context) string {
	id, _ := c.Get(ContextCustomerID).(string)
	return id
}

// CustomerEmail returns the authenticated customer's email
func CustomerEmail(c echo.Context) string {
	email, _ := c.Get(ContextEmail).(string)
	return email
}
