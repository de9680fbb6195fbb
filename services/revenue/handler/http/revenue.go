package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/revenue"
)

// RevenueHandler handles HTTP requests for the revenue dashboards
type RevenueHandler struct {
	revenueUC revenue.RevenueUC
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(revenueUC revenue.RevenueUC) *RevenueHandler {
	return &RevenueHandler{
		revenueUC: revenueUC,
	}
}

// Payout handles GET /payout
func (h *RevenueHandler) Payout(c echo.Context) error {
	return h.report(c, models.ScopeMerchantPayout, "")
}

// MerchantProducts handles GET /product
func (h *RevenueHandler) MerchantProducts(c echo.Context) error {
	return h.report(c, models.ScopeMerchantProducts, "")
}

// AffiliateOwn handles GET /affiliate/own
func (h *RevenueHandler) AffiliateOwn(c echo.Context) error {
	return h.report(c, models.ScopeAffiliateOwn, "")
}

// AffiliateMerchant handles GET /affiliate/merchant
func (h *RevenueHandler) AffiliateMerchant(c echo.Context) error {
	return h.report(c, models.ScopeAffiliateMerchant, "")
}

// Product handles GET /product/:id/revenue
func (h *RevenueHandler) Product(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return utils.BadRequestResponse(c, "Product ID is required")
	}
	return h.report(c, models.ScopeProduct, productID)
}

func (h *RevenueHandler) report(c echo.Context, scope models.RevenueScope, productID string) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	middleware.AddAttribute(c, "revenue.scope", string(scope))

	data, err := h.revenueUC.GetReport(c.Request().Context(), scope, customerID, productID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "success", data)
}
