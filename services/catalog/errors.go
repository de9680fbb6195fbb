package catalog

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrProductNotFound  = apperror.NotFound("product not found")
	ErrMerchantNotFound = apperror.NotFound("merchant not found")
	ErrInvalidProduct   = apperror.BadRequest("title and a positive price are required")
	ErrInvalidOption    = apperror.BadRequest("option price must be positive")
	ErrInvalidLimit     = apperror.BadRequest("limitCustomer cannot be negative")
)
