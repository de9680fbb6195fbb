package usecase

import (
	"time"
	_ "time/tzdata"

	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/revenue"
)

// RevenueUC implements revenue.RevenueUC
type RevenueUC struct {
	repo revenue.RevenueRepo
	cfg  *models.Config
	loc  *time.Location
	now  func() time.Time
}

// NewRevenueUC creates a new revenue usecase. An unknown report timezone falls back to UTC.
func NewRevenueUC(repo revenue.RevenueRepo, cfg *models.Config) *RevenueUC {
	loc, err := time.LoadLocation(cfg.Commerce.ReportTimezone)
	if err != nil {
		logger.Warn("Unknown report timezone, using UTC",
			logger.String("timezone", cfg.Commerce.ReportTimezone),
			logger.Err(err))
		loc = time.UTC
	}

	return &RevenueUC{
		repo: repo,
		cfg:  cfg,
		loc:  loc,
		now:  models.Now,
	}
}
