// Package session maintains the client's single source of truth for "is
// there a logged-in user, and who are they".
//
// The Manager reconciles a persisted opaque bearer token with the backend's
// identity endpoint while tolerating backend unavailability and a known
// race between token write and identity read right after registration.
//
// Lifecycle: New -> Bootstrap (once) -> Login/Register/SetRole/Logout ->
// discard. Consumers (command guards, panels) read state through Snapshot
// and never mutate it directly.
//
// # Failure policy
//
// A 401 from the identity endpoint is the only thing that destroys a stored
// token, and only outside the registration grace window. Network failures,
// timeouts and non-401 statuses always preserve the token and the current
// user: a server hiccup must never log anyone out.
package session
