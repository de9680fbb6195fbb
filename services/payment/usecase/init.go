package usecase

import (
	"time"

	"github.com/piresc/socialclub/internal/pkg/invalidation"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/payment"
)

// PaymentUC implements payment.PaymentUC
type PaymentUC struct {
	repo        payment.PaymentRepo
	gw          payment.PaymentGW
	invalidator invalidation.Invalidator
	cfg         *models.Config
	now         func() time.Time
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	repo payment.PaymentRepo,
	gw payment.PaymentGW,
	invalidator invalidation.Invalidator,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		repo:        repo,
		gw:          gw,
		invalidator: invalidator,
		cfg:         cfg,
		now:         models.Now,
	}
}
