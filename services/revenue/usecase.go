package revenue

import (
	"context"
	"encoding/json"

	"github.com/piresc/socialclub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/socialclub/services/revenue RevenueUC

// RevenueUC serves the revenue dashboards
type RevenueUC interface {
	// GetReport returns the JSON encoded report of scope for the authenticated customer.
	// productID is only used by the product scope.
	GetReport(ctx context.Context, scope models.RevenueScope, customerID, productID string) (json.RawMessage, error)
}
