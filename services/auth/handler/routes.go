package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/auth"
	httpHandler "github.com/piresc/socialclub/services/auth/handler/http"
)

const (
	otpRequestsPerMinute   = 5
	loginRequestsPerMinute = 10
)

// Handler wires the auth endpoints into the router
type Handler struct {
	authHTTP    *httpHandler.AuthHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates the auth route handler
func NewHandler(authUC auth.AuthUC, redisClient *database.RedisClient, cfg *models.Config) *Handler {
	return &Handler{
		authHTTP:    httpHandler.NewAuthHandler(authUC),
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes. Endpoints that mail or take passwords are rate limited per IP.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	basic := middleware.BasicAuthMiddleware(h.cfg.BasicAuth)
	otpLimit := middleware.IPRateLimiter(otpRequestsPerMinute, time.Minute, h.redisClient)
	loginLimit := middleware.IPRateLimiter(loginRequestsPerMinute, time.Minute, h.redisClient)

	e.POST("/otp/send", h.authHTTP.SendOTP, basic, otpLimit)

	authGroup := e.Group("/auth")
	authGroup.GET("/signup/token/:token/:email", h.authHTTP.CheckSignupToken, basic)
	authGroup.POST("/signup", h.authHTTP.Signup, basic, loginLimit)
	authGroup.POST("/login", h.authHTTP.Login, basic, loginLimit)
	authGroup.POST("/refresh-token", h.authHTTP.Refresh, middleware.JWTRefreshMiddleware(h.cfg.JWT))

	authGroup.POST("/forgot-password", h.authHTTP.ForgotPassword, basic, otpLimit)
	authGroup.GET("/password-reset/:uid", h.authHTTP.GetPasswordReset, basic)
	authGroup.POST("/password-reset/:uid", h.authHTTP.ResetPassword, basic, loginLimit)

	e.GET("/customer", h.authHTTP.Me, middleware.JWTAuthMiddleware(h.cfg.JWT))
}
