package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
)

// BasicAuthMiddleware guards server-to-server endpoints with the configured credentials.
// Rejections surface as echo.ErrUnauthorized and are rendered by utils.HTTPErrorHandler.
func BasicAuthMiddleware(config models.BasicAuthConfig) echo.MiddlewareFunc {
	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if config.Username == "" {
				return false, nil
			}
			userOK := subtle.ConstantTimeCompare([]byte(username), []byte(config.Username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(password), []byte(config.Password)) == 1
			return userOK && passOK, nil
		},
	})
}
