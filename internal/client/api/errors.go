package api

import "errors"

var (
	// ErrUnavailable covers network failures, timeouts and cancellations.
	// It must never cause the caller to discard session state.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is a definitive 401: the token is invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is a 403: authenticated but the role does not permit
	// the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is a 400; the wrapped text carries the backend message.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is a 404.
	ErrNotFound = errors.New("not found")

	// ErrServer is any other non-2xx status. Treated as transient.
	ErrServer = errors.New("server error")
)
