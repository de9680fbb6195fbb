package notification

import "github.com/piresc/socialclub/internal/pkg/apperror"

var (
	ErrMissingRecipient = apperror.BadRequest("event has no recipient")
	ErrEmptyLinks       = apperror.BadRequest("affiliate event has no links")
	ErrMissingLink      = apperror.BadRequest("password reset event has no link")
)
