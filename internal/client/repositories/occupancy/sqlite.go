package occupancy

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/dbx"
)

// SQLiteRepository implements Repository on top of the local cache database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceKind deletes the old snapshot for kind and inserts the new one in a
// single transaction, so readers never observe a half-replaced panel.
func (r *SQLiteRepository) ReplaceKind(ctx context.Context, kind models.FacilityKind, facilities []models.Facility, refreshedAt time.Time) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from facilities where kind=?`, string(kind)); err != nil {
			return fmt.Errorf("failed to clear %s snapshot: %w", kind, err)
		}

		query := `insert into facilities
			(kind, id, name, building, room_number, max_capacity, current_occupancy, is_open, equipment_status, refreshed_at)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for _, f := range facilities {
			_, err := tx.ExecContext(ctx, query,
				string(kind), f.ID, f.Name, f.Building, f.RoomNumber,
				f.MaxCapacity, f.CurrentOccupancy, boolToInt(f.Open),
				f.EquipmentStatus, refreshedAt.Unix())
			if err != nil {
				return fmt.Errorf("failed to insert facility %d: %w", f.ID, err)
			}
		}
		return nil
	})
}

// ListByKind returns the cached snapshot of one kind, oldest-write-wins on
// the timestamp (all rows of a kind carry the same stamp).
func (r *SQLiteRepository) ListByKind(ctx context.Context, kind models.FacilityKind) ([]models.Facility, time.Time, error) {
	query := `select id, name, building, room_number, max_capacity, current_occupancy, is_open, equipment_status, refreshed_at
		from facilities where kind=? order by name`
	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to select facilities: %w", err)
	}
	defer rows.Close()

	var result []models.Facility
	var stamp int64
	for rows.Next() {
		f := models.Facility{Kind: kind}
		var open int
		if err := rows.Scan(&f.ID, &f.Name, &f.Building, &f.RoomNumber,
			&f.MaxCapacity, &f.CurrentOccupancy, &open, &f.EquipmentStatus, &stamp); err != nil {
			return nil, time.Time{}, err
		}
		f.Open = open != 0
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	if stamp == 0 {
		return result, time.Time{}, nil
	}
	return result, time.Unix(stamp, 0), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
