package client

import (
	"errors"
	"fmt"
)

const (
	// DefaultErrorMessage is shown for a non-2xx response without an error field
	DefaultErrorMessage = "Failed to analyze"
	// GenericErrorMessage is shown for transport and decoding failures
	GenericErrorMessage = "Failed to analyze. Please try again."
)

// APIError is a non-2xx response from the analysis backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analysis backend returned %d: %s", e.StatusCode, e.Message)
}

// RequestError covers failures before a usable response body exists:
// encoding, transport and JSON decoding.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// AlertMessage is the text shown to the user for a failed analysis
func AlertMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return DefaultErrorMessage
	}
	return GenericErrorMessage
}
