package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/socialclub/internal/pkg/apperror"
	"github.com/piresc/socialclub/internal/pkg/logger"
)

// Response represents the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

// SuccessResponse sends a success response with a body
func SuccessResponse(c echo.Context, statusCode int, message string, body interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Message: errorMessage,
	})
}

// HandleError maps a use case error to its status and envelope.
// Server-side failures are logged, the client only sees the public message.
func HandleError(c echo.Context, err error) error {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("path", c.Path()),
			logger.String("kind", kind.String()),
			logger.Err(err))
	}
	return ErrorResponseHandler(c, status, apperror.PublicMessage(err))
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// HTTPErrorHandler renders errors that escape handlers, such as routing misses
// and rejected basic auth, in the standard envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if he.Code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `basic realm="Restricted"`)
		}
		_ = ErrorResponseHandler(c, he.Code, message)
		return
	}

	_ = HandleError(c, err)
}
