package affiliate

import (
	"context"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/affiliate AffiliateUC

// AffiliateUC manages the referral links merchants grant to customers
type AffiliateUC interface {
	CreateAffiliates(ctx context.Context, customerID string, req *models.CreateAffiliatesRequest) ([]models.Affiliate, error)
	GetByUID(ctx context.Context, uid string) (*models.AffiliateDetail, error)
	ListSiblings(ctx context.Context, uid string) ([]models.AffiliateLink, error)
	CheckCustomer(ctx context.Context, customerID, email string) (*models.CustomerCheck, error)
}
