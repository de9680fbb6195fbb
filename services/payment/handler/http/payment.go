package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/payment"
)

// PaymentHandler handles invoice creation, gateway callbacks and polling
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreateInvoice handles POST /create-invoice
func (h *PaymentHandler) CreateInvoice(c echo.Context) error {
	var req models.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.ProductID == "" {
		return utils.BadRequestResponse(c, "Product ID is required")
	}

	result, err := h.paymentUC.CreateInvoice(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.AddAttribute(c, "transaction.uid", result.Transaction.UID)
	return utils.SuccessResponse(c, http.StatusCreated, "Invoice created", result)
}

// CreateAffiliateInvoice handles POST /create-invoice/affiliate
func (h *PaymentHandler) CreateAffiliateInvoice(c echo.Context) error {
	var req models.CreateAffiliateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.AffiliateUID == "" {
		return utils.BadRequestResponse(c, "Affiliate ID is required")
	}

	result, err := h.paymentUC.CreateAffiliateInvoice(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	middleware.AddAttribute(c, "transaction.uid", result.Transaction.UID)
	return utils.SuccessResponse(c, http.StatusCreated, "Invoice created", result)
}

// CallbackSimple handles GET /call-back/simple/:uid
func (h *PaymentHandler) CallbackSimple(c echo.Context) error {
	return h.confirm(c, models.PaymentModeSimple)
}

// CallbackAffiliate handles GET /call-back/affiliate/:uid
func (h *PaymentHandler) CallbackAffiliate(c echo.Context) error {
	return h.confirm(c, models.PaymentModeAffiliate)
}

// confirm is hit by QPay and by clients returning from the bank app
func (h *PaymentHandler) confirm(c echo.Context, mode models.PaymentMode) error {
	uid := c.Param("uid")
	if uid == "" {
		return utils.BadRequestResponse(c, "Transaction UID is required")
	}
	middleware.AddAttribute(c, "transaction.uid", uid)
	middleware.AddAttribute(c, "payment.mode", string(mode))

	txn, err := h.paymentUC.ConfirmPayment(c.Request().Context(), uid, mode)
	if err != nil {
		if errors.Is(err, payment.ErrNotYetPaid) {
			logger.DebugCtx(c.Request().Context(), "Payment callback before settlement",
				logger.String("uid", uid))
		}
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", txn)
}

// CheckTransaction handles GET /qpay/check/transaction/:id
func (h *PaymentHandler) CheckTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	view, err := h.paymentUC.CheckTransaction(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "success", view)
}
