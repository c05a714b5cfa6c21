package apperr

import (
	"errors"
	"net/http"
)

// BusinessError is the single error type raised for business-rule
// violations. Code doubles as the HTTP status the boundary serializes.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func New(message string, code int) *BusinessError {
	return &BusinessError{Code: code, Message: message}
}

func NotFound(message string) *BusinessError {
	return &BusinessError{Code: http.StatusNotFound, Message: message}
}

func Forbidden(message string) *BusinessError {
	return &BusinessError{Code: http.StatusForbidden, Message: message}
}

func Validation(message string) *BusinessError {
	return &BusinessError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *BusinessError {
	return &BusinessError{Code: http.StatusUnauthorized, Message: message}
}

func Conflict(message string) *BusinessError {
	return &BusinessError{Code: http.StatusConflict, Message: message}
}

// As unwraps err down to a *BusinessError, if one is in the chain.
func As(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
