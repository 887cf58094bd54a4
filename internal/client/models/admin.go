package models

import "time"

// DirectoryUser is one row of the admin user directory. Unlike User it
// carries the registration date the directory view shows.
type DirectoryUser struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        Role      `json:"role"`
	Department  string    `json:"department"`
	ManagerType string    `json:"manager_type"`
	DateJoined  time.Time `json:"date_joined"`
}

// RoleCounts breaks the user population down by role.
type RoleCounts struct {
	Total     int `json:"total"`
	Students  int `json:"students"`
	Lecturers int `json:"lecturers"`
	Managers  int `json:"managers"`
	Admins    int `json:"admins"`
}

// FaultCounts summarises the fault backlog.
type FaultCounts struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

// AdminStats is the admin console overview.
type AdminStats struct {
	Users               RoleCounts  `json:"users"`
	Faults              FaultCounts `json:"faults"`
	PendingRoleRequests int         `json:"pending_role_requests"`
}

// RecurringFault is a fault pattern that occurred at the same location at
// least twice.
type RecurringFault struct {
	Building string `json:"building"`
	Room     string `json:"room_number"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// RecurringOverload is a repeated capacity-overload pattern at one location.
type RecurringOverload struct {
	Building     string `json:"building"`
	Room         string `json:"room_number"`
	ResourceType string `json:"resource_type"`
	Count        int    `json:"count"`
}

// RecurringReport groups both recurring-pattern lists for the report view.
type RecurringReport struct {
	Faults    []RecurringFault
	Overloads []RecurringOverload
}
