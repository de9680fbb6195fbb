package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
)

// RevenueRepo implements revenue.RevenueRepo over Postgres and the Redis report cache
type RevenueRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRevenueRepo creates a new revenue repository instance
func NewRevenueRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RevenueRepo {
	return &RevenueRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
