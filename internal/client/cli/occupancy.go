package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/services"
)

// ListFacilities renders one occupancy panel. Cached snapshots are labelled
// with their age so the user knows they may be stale.
func (a *App) ListFacilities(ctx context.Context, kind models.FacilityKind) error {
	var snap *services.Snapshot
	var err error
	if a.currentMode() == ModeOffline {
		// known-down server, don't wait out a request timeout
		snap, err = a.occupancy.ListCached(ctx, kind)
	} else {
		snap, err = a.occupancy.List(ctx, kind)
	}
	if err != nil {
		return err
	}

	if snap.Cached {
		printlnFn(fmt.Sprintf("Server unreachable; showing cached data from %s", snap.TakenAt.Format("2006-01-02 15:04")))
	}
	if len(snap.Facilities) == 0 {
		printlnFn("Nothing to show.")
		return nil
	}

	for _, f := range snap.Facilities {
		state := "closed"
		if f.Open {
			state = "open"
		}
		line := fmt.Sprintf("#%-3d %-30s %3d%% (%d/%d) %s",
			f.ID, f.Name, f.OccupancyPercent(), f.CurrentOccupancy, f.MaxCapacity, state)
		if f.EquipmentStatus != "" {
			line += "  equipment: " + f.EquipmentStatus
		}
		printlnFn(line)
	}
	return nil
}

// UpdateOccupancy handles: occupancy <kind> <id> <current> [open|closed]
func (a *App) UpdateOccupancy(ctx context.Context, args []string) error {
	if len(args) < 3 {
		printlnFn("Usage: occupancy <library|lab|classroom> <id> <current> [open|closed]")
		return nil
	}

	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad facility id %q", args[1])
	}
	current, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad occupancy %q", args[2])
	}

	upd := models.OccupancyUpdate{CurrentOccupancy: current, Open: true}
	if len(args) > 3 {
		switch args[3] {
		case "open":
			upd.Open = true
		case "closed":
			upd.Open = false
		default:
			return fmt.Errorf("expected open or closed, got %q", args[3])
		}
	}

	msg, err := a.occupancy.Update(ctx, kind, id, upd)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

// PendingUpdates lists occupancy changes awaiting manager approval.
func (a *App) PendingUpdates(ctx context.Context) error {
	pending, err := a.occupancy.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		printlnFn("No pending updates.")
		return nil
	}
	for _, p := range pending {
		state := "closed"
		if p.Open {
			state = "open"
		}
		printlnFn(fmt.Sprintf("#%-3d %-9s %-30s wants %d, %s (by %s)",
			p.ID, p.Kind, p.FacilityName, p.CurrentOccupancy, state, p.RequestedBy))
	}
	return nil
}

// ResolveUpdate handles approve-update/reject-update <kind> <id> [reason...].
func (a *App) ResolveUpdate(ctx context.Context, approve bool, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: approve-update|reject-update <library|lab|classroom> <id> [reason]")
		return nil
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad request id %q", args[1])
	}
	reason := joinTail(args[2:])

	if err := a.occupancy.Resolve(ctx, kind, id, approve, reason); err != nil {
		return err
	}
	printlnFn(verdictWord(approve) + ".")
	return nil
}

func parseKind(s string) (models.FacilityKind, error) {
	switch s {
	case "library", "libraries":
		return models.FacilityLibrary, nil
	case "lab", "labs":
		return models.FacilityLab, nil
	case "classroom", "classrooms":
		return models.FacilityClassroom, nil
	}
	return "", fmt.Errorf("unknown facility kind %q", s)
}
