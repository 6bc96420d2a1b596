package llm

import (
	"fmt"
	"net/http"

	apperror "thread-translator/internal/error"
)

// ------------------------------------------------------------------------------------------------------
// classifyStatus maps a vendor HTTP status to the shared error taxonomy.
// Rate limits and 5xx are retryable; authentication and remaining 4xx
// responses are surfaced immediately.
func classifyStatus(provider string, status int, body string) error {
	message := fmt.Sprintf("%s API error: status %d", provider, status)

	switch {
	case status == http.StatusTooManyRequests:
		return apperror.NewRateLimitError(message, fmt.Errorf("body: %s", body))
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperror.NewAuthenticationError(message, fmt.Errorf("body: %s", body))
	case status >= http.StatusInternalServerError:
		return apperror.NewProviderError(message, fmt.Errorf("body: %s", body))
	default:
		return apperror.NewValidationError(message, fmt.Errorf("body: %s", body))
	}
}

// ------------------------------------------------------------------------------------------------------
// networkError wraps a transport failure that never produced a status code
func networkError(provider string, err error) error {
	return apperror.NewProviderError(fmt.Sprintf("%s request failed", provider), err)
}
