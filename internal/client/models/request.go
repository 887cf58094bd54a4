package models

import "time"

// RequestStatus is shared by room requests, role requests and pending
// occupancy update requests.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoomRequest is a booking request for a classroom or lab time slot.
type RoomRequest struct {
	ID                int64         `json:"id"`
	RequestedBy       string        `json:"requested_by"`
	RoomType          FacilityKind  `json:"room_type"`
	RoomID            int64         `json:"room_id"`
	RoomName          string        `json:"room_name"`
	Purpose           string        `json:"purpose"`
	ExpectedAttendees int           `json:"expected_attendees"`
	Date              string        `json:"requested_date"` // YYYY-MM-DD
	StartTime         string        `json:"start_time"`     // HH:MM[:SS]
	EndTime           string        `json:"end_time"`
	Status            RequestStatus `json:"status"`
	ApprovedBy        string        `json:"approved_by"`
	CreatedAt         time.Time     `json:"created_at"`
}

// RoomRequestDraft is the creation payload for a room request.
type RoomRequestDraft struct {
	RoomType          FacilityKind `json:"room_type"`
	RoomID            int64        `json:"room_id"`
	Purpose           string       `json:"purpose"`
	ExpectedAttendees int          `json:"expected_attendees"`
	Date              string       `json:"requested_date"`
	StartTime         string       `json:"start_time"`
	EndTime           string       `json:"end_time"`
}

// RoleRequest is a pending elevation (student -> lecturer/manager) awaiting
// admin or manager approval. Owned by the backend, read-only here.
type RoleRequest struct {
	ID            int64         `json:"id"`
	Email         string        `json:"user_email"`
	RequestedRole Role          `json:"requested_role"`
	Reason        string        `json:"reason"`
	ManagerType   string        `json:"manager_type"`
	Status        RequestStatus `json:"status"`
	RequestedAt   time.Time     `json:"requested_at"`
}

// UpdateRequest is a queued occupancy change awaiting manager approval,
// produced when a non-manager submits an occupancy update.
type UpdateRequest struct {
	ID               int64         `json:"id"`
	Kind             FacilityKind  `json:"kind"`
	FacilityID       int64         `json:"facility_id"`
	FacilityName     string        `json:"facility_name"`
	RequestedBy      string        `json:"requested_by"`
	CurrentOccupancy int           `json:"requested_current_occupancy"`
	Open             bool          `json:"requested_is_open"`
	Status           RequestStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}
