package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/payment"
	httpHandler "github.com/piresc/socialclub/services/payment/handler/http"
)

// Handler wires the payment endpoints into the router
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates the payment route handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the payment routes. Gateway callbacks are public.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	basic := middleware.BasicAuthMiddleware(h.cfg.BasicAuth)

	e.POST("/create-invoice", h.paymentHTTP.CreateInvoice, basic)
	e.POST("/create-invoice/affiliate", h.paymentHTTP.CreateAffiliateInvoice, basic)
	e.GET("/qpay/check/transaction/:id", h.paymentHTTP.CheckTransaction, basic)

	callback := e.Group("/call-back")
	callback.GET("/simple/:uid", h.paymentHTTP.CallbackSimple)
	callback.GET("/affiliate/:uid", h.paymentHTTP.CallbackAffiliate)
}
