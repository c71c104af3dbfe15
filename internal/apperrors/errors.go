package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError carries an HTTP status code alongside a client-facing message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPErrorHandler maps AppError codes to HTTP responses, everything else
// falls through to echo's default handler.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			code := appErr.Code
			if code < http.StatusBadRequest {
				code = http.StatusInternalServerError
			}
			if jsonErr := c.JSON(code, echo.Map{"message": appErr.Message}); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
