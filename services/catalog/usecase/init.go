package usecase

import (
	"time"

	"github.com/piresc/socialclub/internal/pkg/invalidation"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/catalog"
)

// CatalogUC implements catalog.CatalogUC
type CatalogUC struct {
	repo        catalog.CatalogRepo
	invalidator invalidation.Invalidator
	cfg         *models.Config
	now         func() time.Time
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(repo catalog.CatalogRepo, invalidator invalidation.Invalidator, cfg *models.Config) *CatalogUC {
	return &CatalogUC{
		repo:        repo,
		invalidator: invalidator,
		cfg:         cfg,
		now:         models.Now,
	}
}
