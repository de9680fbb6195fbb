package affiliate

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrMerchantRequired          = apperror.NotFound("Can not add affiliate. You have to add product first")
	ErrCustomerNotFound          = apperror.NotFound("customer not found")
	ErrAffiliateNotFound         = apperror.NotFound("affiliate not found")
	ErrAffiliateCustomerNotFound = apperror.NotFound("affiliate customer not found")
	ErrProductNotFound           = apperror.NotFound("product not found")
	ErrProductNotOwned           = apperror.New(apperror.KindUnauthorized, "product does not belong to your store")
	ErrAffiliateExists           = apperror.New(apperror.KindConflict, "customer already promotes this product")
	ErrInvalidRequest            = apperror.BadRequest("a valid email and at least one product are required")
	ErrInvalidCommission         = apperror.BadRequest("commission must be between 0 and 100")
	ErrDuplicateProduct          = apperror.BadRequest("product listed more than once")
)
