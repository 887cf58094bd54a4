// Package api contains the transport client for the Campus Navigator
// backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic API contracts (AuthAPI, FacilityAPI, FaultAPI,
//     RequestAPI, NotificationAPI, and the combined Client) used by the
//     session manager and the application services.
//  2. A concrete JSON-over-HTTP implementation (HTTPClient) that sets the
//     bearer Authorization header, decodes `{"message": ...}` error bodies,
//     and maps HTTP statuses to sentinel errors.
//
// # Error Handling
//
// Callers match failures with errors.Is: ErrUnavailable (network failure,
// timeout, cancellation), ErrUnauthorized (401), ErrForbidden (403),
// ErrValidation (400), ErrNotFound (404), ErrServer (anything else
// non-2xx). The backend's human-readable message is preserved in the
// wrapped error text.
//
// Tokens are passed per call rather than held by the client: the session
// manager owns the credential and decides which token each request uses.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
