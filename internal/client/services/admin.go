package services

import (
	"context"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
)

// AdminService covers the admin console (user directory, platform stats)
// and the recurring-issues report managers use for maintenance planning.
type AdminService interface {
	Users(ctx context.Context) ([]models.DirectoryUser, error)
	Stats(ctx context.Context) (*models.AdminStats, error)
	RecurringIssues(ctx context.Context) (*models.RecurringReport, error)
}

type adminService struct {
	api    api.AdminAPI
	tokens TokenSource
	guard  *guard.Guard
}

func NewAdminService(a api.AdminAPI, tokens TokenSource, g *guard.Guard) AdminService {
	return &adminService{api: a, tokens: tokens, guard: g}
}

// The directory and the stats overview are admin territory.
func (s *adminService) Users(ctx context.Context) ([]models.DirectoryUser, error) {
	if _, err := s.guard.Require(models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx, s.tokens.Token())
}

func (s *adminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	if _, err := s.guard.Require(models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.api.Stats(ctx, s.tokens.Token())
}

// RecurringIssues is open to managers as well: they plan maintenance from it.
func (s *adminService) RecurringIssues(ctx context.Context) (*models.RecurringReport, error) {
	if _, err := s.guard.RequireElevated(); err != nil {
		return nil, err
	}
	return s.api.RecurringIssues(ctx, s.tokens.Token())
}
