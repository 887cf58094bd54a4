// Package guard gates client commands on the current session: a command
// either requires any signed-in user or one of a set of roles. It mirrors
// the server's own checks so the user gets an immediate local error instead
// of a round trip that ends in 403.
package guard

import (
	"errors"
	"fmt"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/session"
)

var (
	// ErrNotLoggedIn is returned when a command needs a session and none exists.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrRoleRequired is returned when the signed-in user's role does not
	// permit the command.
	ErrRoleRequired = errors.New("role not permitted")
)

// StateSource is the slice of the session manager the guard needs.
type StateSource interface {
	Snapshot() session.State
}

// Guard answers "may the current user run this" questions.
type Guard struct {
	session StateSource
}

func New(s StateSource) *Guard {
	return &Guard{session: s}
}

// RequireLogin returns the signed-in user, or ErrNotLoggedIn.
func (g *Guard) RequireLogin() (*models.User, error) {
	st := g.session.Snapshot()
	if !st.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return st.User, nil
}

// Require returns the signed-in user if their role is one of roles.
// Admins pass every role check.
func (g *Guard) Require(roles ...models.Role) (*models.User, error) {
	user, err := g.RequireLogin()
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin {
		return user, nil
	}
	for _, r := range roles {
		if user.Role == r {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: need one of %v, have %s", ErrRoleRequired, roles, user.Role)
}

// RequireElevated returns the user when they hold a triage-capable role
// (manager or admin).
func (g *Guard) RequireElevated() (*models.User, error) {
	user, err := g.RequireLogin()
	if err != nil {
		return nil, err
	}
	if !user.Role.Elevated() {
		return nil, fmt.Errorf("%w: need an elevated role, have %s", ErrRoleRequired, user.Role)
	}
	return user, nil
}
