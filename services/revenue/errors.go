package revenue

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrMerchantNotFound          = apperror.NotFound("merchant not found")
	ErrAffiliateCustomerNotFound = apperror.NotFound("affiliate customer not found")
	ErrProductNotFound           = apperror.NotFound("product not found")
	ErrProductNotOwned           = apperror.New(apperror.KindUnauthorized, "product does not belong to your store")
	ErrUnknownScope              = apperror.BadRequest("unknown revenue scope")
)
