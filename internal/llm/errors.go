package llm

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no API key is configured for the
// selected provider. No request is ever sent in that state.
var ErrMissingCredential = errors.New("API key not configured")

var ErrUnknownProvider = errors.New("unknown llm provider")

// AuthError means the provider rejected the credential.
type AuthError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s rejected credentials (status %d): %v", e.Provider, e.StatusCode, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError covers network failures, provider outages, rate limits and
// replies without any usable content.
type TransportError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func classify(provider string, status int, err error) error {
	if status == 401 || status == 403 {
		return &AuthError{Provider: provider, StatusCode: status, Err: err}
	}
	return &TransportError{Provider: provider, StatusCode: status, Err: err}
}
