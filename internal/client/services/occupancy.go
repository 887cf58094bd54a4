package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/repositories/occupancy"
	"github.com/azhukov/campus-navigator/internal/logging"
)

// Snapshot is a panel listing plus its provenance: fresh from the server or
// served from the local cache while offline.
type Snapshot struct {
	Facilities []models.Facility
	Cached     bool
	TakenAt    time.Time
}

// OccupancyService drives the three occupancy panels. Successful fetches
// are written through to the local cache; when the server is unreachable,
// List falls back to the last cached snapshot.
type OccupancyService interface {
	List(ctx context.Context, kind models.FacilityKind) (*Snapshot, error)
	// ListCached serves the last stored snapshot without touching the
	// network, for offline mode.
	ListCached(ctx context.Context, kind models.FacilityKind) (*Snapshot, error)
	Update(ctx context.Context, kind models.FacilityKind, id int64, upd models.OccupancyUpdate) (string, error)
	Pending(ctx context.Context) ([]models.UpdateRequest, error)
	Resolve(ctx context.Context, kind models.FacilityKind, id int64, approve bool, reason string) error
}

type occupancyService struct {
	api    api.FacilityAPI
	tokens TokenSource
	cache  occupancy.Repository
	guard  *guard.Guard
	log    logging.Logger
	now    func() time.Time
}

func NewOccupancyService(a api.FacilityAPI, tokens TokenSource, cache occupancy.Repository, g *guard.Guard, log logging.Logger) OccupancyService {
	if log == nil {
		log = logging.Nop()
	}
	return &occupancyService{api: a, tokens: tokens, cache: cache, guard: g, log: log, now: time.Now}
}

// List fetches the panel for kind. A fetch that succeeds refreshes the
// cache; one that fails with ErrUnavailable degrades to the cached snapshot
// when there is one. All other errors pass through.
func (s *occupancyService) List(ctx context.Context, kind models.FacilityKind) (*Snapshot, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}

	facilities, err := s.api.ListFacilities(ctx, s.tokens.Token(), kind)
	if err == nil {
		now := s.now()
		if cerr := s.cache.ReplaceKind(ctx, kind, facilities, now); cerr != nil {
			s.log.Warn(ctx, "failed to refresh occupancy cache", "kind", kind, "error", cerr)
		}
		return &Snapshot{Facilities: facilities, TakenAt: now}, nil
	}

	if !errors.Is(err, api.ErrUnavailable) {
		return nil, err
	}

	cached, at, cerr := s.cache.ListByKind(ctx, kind)
	if cerr != nil || at.IsZero() {
		return nil, err
	}
	s.log.Info(ctx, "serving cached occupancy snapshot", "kind", kind, "taken_at", at)
	return &Snapshot{Facilities: cached, Cached: true, TakenAt: at}, nil
}

func (s *occupancyService) ListCached(ctx context.Context, kind models.FacilityKind) (*Snapshot, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}
	cached, at, err := s.cache.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Facilities: cached, Cached: true, TakenAt: at}, nil
}

// Update submits an occupancy change. The backend applies it directly for
// managers and queues a pending request otherwise; the returned message
// states which happened.
func (s *occupancyService) Update(ctx context.Context, kind models.FacilityKind, id int64, upd models.OccupancyUpdate) (string, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return "", err
	}
	if upd.CurrentOccupancy < 0 {
		return "", fmt.Errorf("%w: occupancy cannot be negative", api.ErrValidation)
	}
	return s.api.UpdateFacility(ctx, s.tokens.Token(), kind, id, upd)
}

func (s *occupancyService) Pending(ctx context.Context) ([]models.UpdateRequest, error) {
	if _, err := s.guard.RequireElevated(); err != nil {
		return nil, err
	}
	return s.api.PendingUpdates(ctx, s.tokens.Token())
}

func (s *occupancyService) Resolve(ctx context.Context, kind models.FacilityKind, id int64, approve bool, reason string) error {
	if _, err := s.guard.RequireElevated(); err != nil {
		return err
	}
	return s.api.ResolveUpdate(ctx, s.tokens.Token(), kind, id, approve, reason)
}
