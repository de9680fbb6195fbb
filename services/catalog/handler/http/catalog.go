package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/catalog"
)

// CatalogHandler handles HTTP requests for products and storefronts
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog HTTP handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
	}
}

// CreateProduct handles POST /product
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.AddAttribute(c, "product.id", product.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "success", map[string]interface{}{"product": product})
}

// GetProduct handles GET /product/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Product ID is required")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"product": product})
}

// GetProductByUID handles GET /product/store/uid/:uid
func (h *CatalogHandler) GetProductByUID(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return utils.BadRequestResponse(c, "Product UID is required")
	}

	product, err := h.catalogUC.GetProductByUID(c.Request().Context(), uid)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"product": product})
}

// GetStore handles GET /product/store/:id
func (h *CatalogHandler) GetStore(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Merchant ID is required")
	}

	store, err := h.catalogUC.GetStore(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", store)
}

// ListMerchants handles GET /merchant/list
func (h *CatalogHandler) ListMerchants(c echo.Context) error {
	ids, err := h.catalogUC.ListMerchants(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"list": ids})
}
