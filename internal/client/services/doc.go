// Package services implements the client's use cases on top of the API
// client, the session manager and the local cache: occupancy panels, fault
// reporting, booking and elevation requests, and the notification feed.
//
// Each service takes the narrow API slice it needs plus a TokenSource, so
// tests can fake both. Role checks run locally through the guard before any
// request leaves the machine.
package services
