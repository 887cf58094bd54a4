package api

import (
	"context"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

// Credentials is the result of a successful login or registration.
// User may be nil after registration: the backend does not always include
// the profile in the register response.
type Credentials struct {
	Token string
	User  *models.User
}

// AuthAPI is the slice of the backend consumed by the session manager.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, email, password string) (*Credentials, error)
	Me(ctx context.Context, token string) (*models.User, error)
	SetRole(ctx context.Context, token string, role models.Role, reason, managerType string) (*models.User, error)
}

// FacilityAPI covers the occupancy panels.
type FacilityAPI interface {
	ListFacilities(ctx context.Context, token string, kind models.FacilityKind) ([]models.Facility, error)
	// UpdateFacility submits an occupancy change. For non-managers the
	// backend queues a pending update request instead of applying it; the
	// returned message states which of the two happened.
	UpdateFacility(ctx context.Context, token string, kind models.FacilityKind, id int64, upd models.OccupancyUpdate) (string, error)
	PendingUpdates(ctx context.Context, token string) ([]models.UpdateRequest, error)
	ResolveUpdate(ctx context.Context, token string, kind models.FacilityKind, id int64, approve bool, reason string) error
}

// FaultAPI covers fault reporting and triage.
type FaultAPI interface {
	CreateFault(ctx context.Context, token string, draft models.FaultDraft) (*models.Fault, error)
	ListFaults(ctx context.Context, token string) ([]models.Fault, error)
	UpdateFault(ctx context.Context, token string, id int64, patch models.FaultPatch) (*models.Fault, error)
}

// RequestAPI covers room bookings and role elevation requests.
type RequestAPI interface {
	CreateRoomRequest(ctx context.Context, token string, draft models.RoomRequestDraft) (*models.RoomRequest, error)
	ListRoomRequests(ctx context.Context, token string) ([]models.RoomRequest, error)
	ResolveRoomRequest(ctx context.Context, token string, id int64, approve bool, reason string) error
	ListRoleRequests(ctx context.Context, token string) ([]models.RoleRequest, error)
	ResolveRoleRequest(ctx context.Context, token string, id int64, approve bool, reason string) error
}

// AdminAPI covers the admin console (user directory, platform stats) and
// the recurring-issues report.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]models.DirectoryUser, error)
	Stats(ctx context.Context, token string) (*models.AdminStats, error)
	RecurringIssues(ctx context.Context, token string) (*models.RecurringReport, error)
}

// NotificationAPI covers the per-user notification feed.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, token string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, token string, id int64) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
}

// Client is the full backend surface. HTTPClient implements it; tests use
// narrow fakes for the slice they exercise.
type Client interface {
	AuthAPI
	FacilityAPI
	FaultAPI
	RequestAPI
	AdminAPI
	NotificationAPI

	// Ping checks backend reachability without credentials.
	Ping(ctx context.Context) error
}
