package errors

import "net/http"

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a new unauthorized HTTP error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a forbidden HTTP error carrying the denial reason.
// An empty reason falls back to MessageForbidden.
func NewForbiddenHTTPError(reason string) *HTTPError {
	if reason == "" {
		reason = MessageForbidden
	}
	return &HTTPError{
		Code:       http.StatusForbidden,
		Message:    reason,
		StatusCode: http.StatusForbidden,
	}
}

// NewNotFoundHTTPError returns a not-found HTTP error.
func NewNotFoundHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageNotFound
	}
	return &HTTPError{
		Code:       http.StatusNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
