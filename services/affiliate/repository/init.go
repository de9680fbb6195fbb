package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/socialclub/internal/pkg/models"
)

// AffiliateRepo implements affiliate.AffiliateRepo over Postgres
type AffiliateRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAffiliateRepo creates a new affiliate repository instance
func NewAffiliateRepo(cfg *models.Config, db *sqlx.DB) *AffiliateRepo {
	return &AffiliateRepo{
		cfg: cfg,
		db:  db,
	}
}
