package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/affiliate"
	httpHandler "github.com/piresc/socialclub/services/affiliate/handler/http"
)

// Handler wires the affiliate endpoints into the router
type Handler struct {
	affiliateHTTP *httpHandler.AffiliateHandler
	cfg           *models.Config
}

// NewHandler creates the affiliate route handler
func NewHandler(affiliateUC affiliate.AffiliateUC, cfg *models.Config) *Handler {
	return &Handler{
		affiliateHTTP: httpHandler.NewAffiliateHandler(affiliateUC),
		cfg:           cfg,
	}
}

// RegisterRoutes registers the affiliate routes. Link lookups are public,
// the storefront copy sits behind basic auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)
	basic := middleware.BasicAuthMiddleware(h.cfg.BasicAuth)

	e.POST("/affiliate", h.affiliateHTTP.CreateAffiliates, jwt)
	e.GET("/affiliate/uid/:uid", h.affiliateHTTP.GetByUID)
	e.GET("/product/affiliate/uid/:uid", h.affiliateHTTP.GetByUID, basic)
	e.GET("/affiliate/list/uid/:uid", h.affiliateHTTP.ListSiblings)
	e.GET("/customer/check/email/:email", h.affiliateHTTP.CheckCustomer, jwt)
}
