package models

import "time"

// Severity grades a fault report.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FaultStatus is the triage state of a fault report.
type FaultStatus string

const (
	FaultOpen       FaultStatus = "open"
	FaultInProgress FaultStatus = "in_progress"
	FaultResolved   FaultStatus = "resolved"
	FaultClosed     FaultStatus = "closed"
)

// Fault is a maintenance fault report. Students and lecturers see only their
// own reports; managers and admins see everything (the backend scopes the
// list, the client just renders it).
type Fault struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Building    string      `json:"building"`
	RoomNumber  string      `json:"room_number"`
	Severity    Severity    `json:"severity"`
	Category    string      `json:"category"`
	Status      FaultStatus `json:"status"`
	AssignedTo  string      `json:"assigned_to"`
	ReportedBy  string      `json:"reported_by"`
	CreatedAt   time.Time   `json:"created_at"`
}

// FaultDraft is the client-side payload for a new report. Location is
// derived from building+room when left empty, matching the backend.
type FaultDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Building    string   `json:"building"`
	RoomNumber  string   `json:"room_number"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
}

// FaultPatch carries the triage fields a manager may change. Nil pointers
// mean "leave unchanged".
type FaultPatch struct {
	Status     *FaultStatus `json:"status,omitempty"`
	AssignedTo *string      `json:"assigned_to,omitempty"`
	Severity   *Severity    `json:"severity,omitempty"`
	Category   *string      `json:"category,omitempty"`
}
