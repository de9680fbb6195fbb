package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
)

// CatalogRepo implements catalog.CatalogRepo over Postgres and Redis
type CatalogRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCatalogRepo creates a new catalog repository instance
func NewCatalogRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CatalogRepo {
	return &CatalogRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
