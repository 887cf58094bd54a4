package occupancy

import (
	"context"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

// Repository describes the snapshot cache operations for facilities.
type Repository interface {
	// ReplaceKind atomically swaps all cached rows of the given kind for the
	// provided facilities, stamping them with refreshedAt.
	ReplaceKind(ctx context.Context, kind models.FacilityKind, facilities []models.Facility, refreshedAt time.Time) error

	// ListByKind returns cached facilities of one kind ordered by name,
	// together with the time the snapshot was taken. A kind that was never
	// cached yields an empty slice and a zero time.
	ListByKind(ctx context.Context, kind models.FacilityKind) ([]models.Facility, time.Time, error)
}
