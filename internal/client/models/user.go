// Package models defines the Campus Navigator domain types exchanged with
// the backend API.
package models

// Role is the access level assigned to a user profile.
type Role string

const (
	RoleUnset    Role = ""
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the roles the backend accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Elevated reports whether the role can triage faults and approve requests.
func (r Role) Elevated() bool {
	return r == RoleManager || r == RoleAdmin
}

// User is the profile the backend derives from a bearer token.
//
// ID is zero for the placeholder profile synthesized right after registration
// when the identity endpoint cannot be read yet; it is filled in by the next
// successful identity resolution.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Department  string `json:"department"`
	ManagerType string `json:"manager_type"`
}
