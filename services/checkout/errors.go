package checkout

import "errors"

var (
	// ErrSessionNotFound indicates the checkout session expired or never existed.
	ErrSessionNotFound = errors.New("checkout session not found or expired")

	// ErrUnknownService indicates the requested service id is not in the catalog.
	ErrUnknownService = errors.New("unknown service")

	// ErrSessionOwnership indicates the caller does not own the session.
	ErrSessionOwnership = errors.New("checkout session belongs to another user")
)
