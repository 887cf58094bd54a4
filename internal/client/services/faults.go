package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
)

// FaultService covers reporting and triaging maintenance faults.
type FaultService interface {
	Report(ctx context.Context, draft models.FaultDraft) (*models.Fault, error)
	// List returns the reports visible to the current user: their own for
	// students and lecturers, everything for managers and admins. The
	// scoping is server-side.
	List(ctx context.Context) ([]models.Fault, error)
	Triage(ctx context.Context, id int64, patch models.FaultPatch) (*models.Fault, error)
}

type faultService struct {
	api    api.FaultAPI
	tokens TokenSource
	guard  *guard.Guard
}

func NewFaultService(a api.FaultAPI, tokens TokenSource, g *guard.Guard) FaultService {
	return &faultService{api: a, tokens: tokens, guard: g}
}

// Report validates the draft locally and submits it. Location falls back to
// "building, room" when not given, matching what the backend stores.
func (s *faultService) Report(ctx context.Context, draft models.FaultDraft) (*models.Fault, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", api.ErrValidation)
	}
	if draft.Severity != "" {
		switch draft.Severity {
		case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
		default:
			return nil, fmt.Errorf("%w: unknown severity %q", api.ErrValidation, draft.Severity)
		}
	}
	if draft.Location == "" && draft.Building != "" {
		draft.Location = draft.Building
		if draft.RoomNumber != "" {
			draft.Location += ", " + draft.RoomNumber
		}
	}

	return s.api.CreateFault(ctx, s.tokens.Token(), draft)
}

func (s *faultService) List(ctx context.Context) ([]models.Fault, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}
	return s.api.ListFaults(ctx, s.tokens.Token())
}

// Triage applies a status/assignment change. Managers and admins only.
func (s *faultService) Triage(ctx context.Context, id int64, patch models.FaultPatch) (*models.Fault, error) {
	if _, err := s.guard.RequireElevated(); err != nil {
		return nil, err
	}
	return s.api.UpdateFault(ctx, s.tokens.Token(), id, patch)
}
