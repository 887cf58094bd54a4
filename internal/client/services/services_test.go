package services

import (
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/session"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

type staticState struct {
	user *models.User
}

func (s staticState) Snapshot() session.State { return session.State{User: s.user} }

func guardFor(role models.Role) *guard.Guard {
	return guard.New(staticState{user: &models.User{ID: 1, Email: "x@campus.edu", Role: role}})
}

func guardAnon() *guard.Guard {
	return guard.New(staticState{})
}
