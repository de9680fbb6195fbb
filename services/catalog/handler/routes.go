package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/catalog"
	httpHandler "github.com/piresc/socialclub/services/catalog/handler/http"
)

// Handler wires the catalog endpoints into the router
type Handler struct {
	catalogHTTP *httpHandler.CatalogHandler
	cfg         *models.Config
}

// NewHandler creates the catalog route handler
func NewHandler(catalogUC catalog.CatalogUC, cfg *models.Config) *Handler {
	return &Handler{
		catalogHTTP: httpHandler.NewCatalogHandler(catalogUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the catalog routes. Storefront reads use basic auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)
	basic := middleware.BasicAuthMiddleware(h.cfg.BasicAuth)

	e.POST("/product", h.catalogHTTP.CreateProduct, jwt)
	e.GET("/product/:id", h.catalogHTTP.GetProduct, jwt)
	e.GET("/product/store/:id", h.catalogHTTP.GetStore, basic)
	e.GET("/product/store/uid/:uid", h.catalogHTTP.GetProductByUID, basic)
	e.GET("/merchant/list", h.catalogHTTP.ListMerchants, basic)
}
