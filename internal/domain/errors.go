package domain

import "errors"

// Error kinds surfaced by every core operation. The HTTP layer maps them onto
// status codes; callers test with errors.Is. Shared state is never mutated on
// a rejected operation.
var (
	// ErrInvalidInput marks a malformed identifier, oversized payload or
	// missing required field. Never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized marks a journalist re-registration without the
	// correct shared secret.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCapacityExceeded marks a full message store or participant
	// registry. Transient; callers may retry later.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrTooManyRequests marks an admission-control rejection. The client
	// may retry after its window resets.
	ErrTooManyRequests = errors.New("too many requests")
)
