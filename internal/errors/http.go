package errors

import (
	"fmt"
	"net/http"
)

// FromStatus maps a backend HTTP status to an AppError. The gateway
// treats 401 and 403 identically: both mean the backend rejected the
// session's credentials and force a sign-out upstream.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AppError{Code: ErrCodeUnauthorized, Message: message}
	case status == http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: message}
	case status == http.StatusConflict:
		return &AppError{Code: ErrCodeConflict, Message: message}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &AppError{Code: ErrCodeValidation, Message: message}
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		return &AppError{Code: ErrCodeTimeout, Message: message}
	case status >= 500:
		return &AppError{Code: ErrCodeUnavailable, Message: message}
	default:
		return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf("unexpected backend status %d: %s", status, message)}
	}
}

// StatusFor maps an application error onto the HTTP status the gateway
// returns to the browser.
func StatusFor(err error) int {
	switch GetCode(err) {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeTokenRetrieval, ErrCodeUnavailable:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
