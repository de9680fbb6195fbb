package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/affiliate"
)

// AffiliateHandler handles HTTP requests for affiliate links
type AffiliateHandler struct {
	affiliateUC affiliate.AffiliateUC
}

// NewAffiliateHandler creates a new affiliate HTTP handler
func NewAffiliateHandler(affiliateUC affiliate.AffiliateUC) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateUC: affiliateUC,
	}
}

// CreateAffiliates handles POST /affiliate
func (h *AffiliateHandler) CreateAffiliates(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAffiliatesRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	logger.InfoCtx(c.Request().Context(), "Creating affiliates",
		logger.String("customer_id", customerID),
		logger.String("email", utils.MaskEmail(req.Email)),
		logger.Int("items", len(req.List)))

	affiliates, err := h.affiliateUC.CreateAffiliates(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "success", map[string]interface{}{"affiliates": affiliates})
}

// GetByUID handles GET /affiliate/uid/:uid and GET /product/affiliate/uid/:uid
func (h *AffiliateHandler) GetByUID(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return utils.BadRequestResponse(c, "Affiliate UID is required")
	}

	detail, err := h.affiliateUC.GetByUID(c.Request().Context(), uid)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"affiliate": detail})
}

// ListSiblings handles GET /affiliate/list/uid/:uid
func (h *AffiliateHandler) ListSiblings(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return utils.BadRequestResponse(c, "Affiliate UID is required")
	}

	links, err := h.affiliateUC.ListSiblings(c.Request().Context(), uid)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", map[string]interface{}{"list": links})
}

// CheckCustomer handles GET /customer/check/email/:email
func (h *AffiliateHandler) CheckCustomer(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	email := c.Param("email")
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	check, err := h.affiliateUC.CheckCustomer(c.Request().Context(), customerID, email)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "success", check)
}
