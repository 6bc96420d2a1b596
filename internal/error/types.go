package error

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeConfiguration  ErrorType = "configuration_error"
	ErrorTypeTimeout        ErrorType = "timeout_error"
	ErrorTypeProvider       ErrorType = "provider_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Err        error     `json:"-"`
}

// ------------------------------------------------------------------------------------------------------
// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ------------------------------------------------------------------------------------------------------
// Unwrap exposes the wrapped error to errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// ------------------------------------------------------------------------------------------------------
// NewValidationError creates a validation error
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewConfigurationError creates a configuration error. Configuration errors
// are fatal and never retried.
func NewConfigurationError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeConfiguration,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewTimeoutError creates a timeout error
func NewTimeoutError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    message,
		StatusCode: http.StatusGatewayTimeout,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewProviderError creates a generic LLM provider error (server-side
// failures and bare network errors)
func NewProviderError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeProvider,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewRateLimitError creates a rate limit error
func NewRateLimitError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeRateLimit,
		Message:    message,
		StatusCode: http.StatusTooManyRequests,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewAuthenticationError creates an authentication error
func NewAuthenticationError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthentication,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// IsRetryable reports whether the error is worth retrying. Only rate-limit
// responses and generic provider failures (5xx, bare network errors)
// qualify; authentication, validation, configuration and timeout errors
// are surfaced immediately.
func IsRetryable(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		// Unclassified errors are treated as bare network failures
		return true
	}
	return appErr.Type == ErrorTypeRateLimit || appErr.Type == ErrorTypeProvider
}

// ------------------------------------------------------------------------------------------------------
// TypeOf returns the error's category, ErrorTypeInternal for unclassified errors
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// ------------------------------------------------------------------------------------------------------
// GetHTTPStatusCode returns the appropriate HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	// Default to internal server error
	return http.StatusInternalServerError
}

// ------------------------------------------------------------------------------------------------------
// ErrorResponse represents the JSON error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ------------------------------------------------------------------------------------------------------
// ErrorDetail contains error details
type ErrorDetail struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
}

// ------------------------------------------------------------------------------------------------------
// NewErrorResponse creates a standardized error response
func NewErrorResponse(err error) ErrorResponse {
	var appErr *AppError

	if errors.As(err, &appErr) {
		return ErrorResponse{
			Error: ErrorDetail{
				Type:    appErr.Type,
				Message: appErr.Message,
				Code:    string(appErr.Type),
			},
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Type:    ErrorTypeInternal,
			Message: err.Error(),
			Code:    string(ErrorTypeInternal),
		},
	}
}
