package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/schedule"
)

// RequestService covers room bookings and role elevation requests.
type RequestService interface {
	Book(ctx context.Context, draft models.RoomRequestDraft) (*models.RoomRequest, error)
	ListBookings(ctx context.Context) ([]models.RoomRequest, error)
	ResolveBooking(ctx context.Context, id int64, approve bool, reason string) error
	ListRoleRequests(ctx context.Context) ([]models.RoleRequest, error)
	ResolveRoleRequest(ctx context.Context, id int64, approve bool, reason string) error
}

type requestService struct {
	api    api.RequestAPI
	tokens TokenSource
	guard  *guard.Guard
}

func NewRequestService(a api.RequestAPI, tokens TokenSource, g *guard.Guard) RequestService {
	return &requestService{api: a, tokens: tokens, guard: g}
}

// Book validates the slot locally before submitting: the date must parse,
// the hours must fall inside the bookable day and end after start.
func (s *requestService) Book(ctx context.Context, draft models.RoomRequestDraft) (*models.RoomRequest, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}

	if draft.RoomType != models.FacilityClassroom && draft.RoomType != models.FacilityLab {
		return nil, fmt.Errorf("%w: only classrooms and labs can be booked", api.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", api.ErrValidation, draft.Date)
	}
	start, end, err := slotHours(draft.StartTime, draft.EndTime)
	if err != nil {
		return nil, err
	}
	if start < schedule.FirstHour || end > schedule.LastHour {
		return nil, fmt.Errorf("%w: slots run %02d:00-%02d:00", api.ErrValidation, schedule.FirstHour, schedule.LastHour)
	}
	if strings.TrimSpace(draft.Purpose) == "" {
		return nil, fmt.Errorf("%w: purpose is required", api.ErrValidation)
	}

	return s.api.CreateRoomRequest(ctx, s.tokens.Token(), draft)
}

func (s *requestService) ListBookings(ctx context.Context) ([]models.RoomRequest, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}
	return s.api.ListRoomRequests(ctx, s.tokens.Token())
}

func (s *requestService) ResolveBooking(ctx context.Context, id int64, approve bool, reason string) error {
	if _, err := s.guard.RequireElevated(); err != nil {
		return err
	}
	return s.api.ResolveRoomRequest(ctx, s.tokens.Token(), id, approve, reason)
}

// Role requests are admin territory.
func (s *requestService) ListRoleRequests(ctx context.Context) ([]models.RoleRequest, error) {
	if _, err := s.guard.Require(models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.api.ListRoleRequests(ctx, s.tokens.Token())
}

func (s *requestService) ResolveRoleRequest(ctx context.Context, id int64, approve bool, reason string) error {
	if _, err := s.guard.Require(models.RoleAdmin); err != nil {
		return err
	}
	return s.api.ResolveRoleRequest(ctx, s.tokens.Token(), id, approve, reason)
}

func slotHours(startTime, endTime string) (int, int, error) {
	start, err := parseHour(startTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad start time %q", api.ErrValidation, startTime)
	}
	end, err := parseHour(endTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad end time %q", api.ErrValidation, endTime)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: end must be after start", api.ErrValidation)
	}
	return start, end, nil
}

func parseHour(t string) (int, error) {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		parsed, err = time.Parse("15:04:05", t)
	}
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}
