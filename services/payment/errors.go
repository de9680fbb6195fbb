package payment

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrTransactionNotFound = apperror.NotFound("transaction not found")
	ErrAlreadyPaid         = apperror.New(apperror.KindConflict, "transaction already paid")
	ErrAffiliateNotFound   = apperror.NotFound("affiliate not found")
	ErrProductNotFound     = apperror.NotFound("product not found")
	ErrCustomerNotFound    = apperror.NotFound("customer not found")
	ErrOptionNotFound      = apperror.New(apperror.KindPreconditionFailed, "option does not belong to product")
	ErrNotYetPaid          = apperror.New(apperror.KindNotYetPaid, "transaction not paid yet")
	ErrSoldOut             = apperror.New(apperror.KindPreconditionFailed, "product sold out")
	ErrGateway             = apperror.New(apperror.KindUpstream, "payment gateway unavailable")
	ErrInvalidEmail        = apperror.BadRequest("a valid email is required")
	ErrAffiliateInactive   = apperror.New(apperror.KindPreconditionFailed, "affiliate link is not active")
)
