package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/revenue"
	httpHandler "github.com/piresc/socialclub/services/revenue/handler/http"
)

// Handler wires the revenue dashboards into the router
type Handler struct {
	revenueHTTP *httpHandler.RevenueHandler
	cfg         *models.Config
}

// NewHandler creates the revenue route handler
func NewHandler(revenueUC revenue.RevenueUC, cfg *models.Config) *Handler {
	return &Handler{
		revenueHTTP: httpHandler.NewRevenueHandler(revenueUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the dashboard routes, all behind customer JWT
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.GET("/payout", h.revenueHTTP.Payout, jwt)
	e.GET("/product", h.revenueHTTP.MerchantProducts, jwt)
	e.GET("/product/:id/revenue", h.revenueHTTP.Product, jwt)
	e.GET("/affiliate/own", h.revenueHTTP.AffiliateOwn, jwt)
	e.GET("/affiliate/merchant", h.revenueHTTP.AffiliateMerchant, jwt)
}
