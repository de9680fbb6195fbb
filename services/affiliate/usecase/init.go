package usecase

import (
	"time"

	"github.com/piresc/socialclub/internal/pkg/invalidation"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/affiliate"
)

// AffiliateUC implements affiliate.AffiliateUC
type AffiliateUC struct {
	repo        affiliate.AffiliateRepo
	gw          affiliate.AffiliateGW
	invalidator invalidation.Invalidator
	cfg         *models.Config
	now         func() time.Time
}

// NewAffiliateUC creates a new affiliate usecase instance
func NewAffiliateUC(
	repo affiliate.AffiliateRepo,
	gw affiliate.AffiliateGW,
	invalidator invalidation.Invalidator,
	cfg *models.Config,
) *AffiliateUC {
	return &AffiliateUC{
		repo:        repo,
		gw:          gw,
		invalidator: invalidator,
		cfg:         cfg,
		now:         models.Now,
	}
}
