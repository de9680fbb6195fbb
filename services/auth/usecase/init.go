package usecase

import (
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/auth"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpLength         = 6
	minPasswordLength = 8
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	repo       auth.AuthRepo
	gw         auth.AuthGW
	cfg        *models.Config
	bcryptCost int
	now        func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(repo auth.AuthRepo, gw auth.AuthGW, cfg *models.Config) *AuthUC {
	return &AuthUC{
		repo:       repo,
		gw:         gw,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		now:        models.Now,
	}
}
