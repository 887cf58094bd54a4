package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/session"
)

type staticState struct {
	state session.State
}

func (s staticState) Snapshot() session.State { return s.state }

func withUser(role models.Role) staticState {
	return staticState{state: session.State{User: &models.User{ID: 1, Email: "x@campus.edu", Role: role}}}
}

func TestRequireLogin(t *testing.T) {
	g := New(staticState{})
	_, err := g.RequireLogin()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	g = New(withUser(models.RoleStudent))
	user, err := g.RequireLogin()
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestRequire_MatchingRole(t *testing.T) {
	g := New(withUser(models.RoleLecturer))

	_, err := g.Require(models.RoleLecturer, models.RoleManager)
	assert.NoError(t, err)

	_, err = g.Require(models.RoleManager)
	assert.ErrorIs(t, err, ErrRoleRequired)
}

func TestRequire_AdminBypassesRoleList(t *testing.T) {
	g := New(withUser(models.RoleAdmin))

	_, err := g.Require(models.RoleManager)
	assert.NoError(t, err)
}

func TestRequire_NotLoggedIn(t *testing.T) {
	g := New(staticState{})

	_, err := g.Require(models.RoleStudent)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRequireElevated(t *testing.T) {
	cases := []struct {
		role models.Role
		ok   bool
	}{
		{models.RoleStudent, false},
		{models.RoleLecturer, false},
		{models.RoleManager, true},
		{models.RoleAdmin, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			g := New(withUser(tc.role))
			_, err := g.RequireElevated()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrRoleRequired)
			}
		})
	}
}
