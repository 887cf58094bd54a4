package models

import "time"

// Notification is a backend-generated message for the current user
// (new faults for managers, status changes for reporters, etc).
type Notification struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	ActionLink string    `json:"action_link"`
	Read       bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
