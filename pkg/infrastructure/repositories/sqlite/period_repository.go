// Package sqlite implements the domain repositories on a SQLite
// database. It is the store behind the CLI and single-node deployments;
// server deployments use the postgres package instead.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
	"github.com/nmasri/laneplan/pkg/domain/services"
)

// PeriodRepository implements repositories.PeriodRepository on SQLite.
type PeriodRepository struct {
	db       *sql.DB
	calendar *services.Calendar
}

// NewPeriodRepository creates a new SQLite-backed period repository
func NewPeriodRepository(db *sql.DB) *PeriodRepository {
	return &PeriodRepository{db: db, calendar: services.NewCalendar()}
}

// Verify interface compliance
var _ repositories.PeriodRepository = (*PeriodRepository)(nil)

// GetOrCreate returns the stored period for the key, creating it on
// first access.
func (r *PeriodRepository) GetOrCreate(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	p, err := r.calendar.NewPeriod(key)
	if err != nil {
		return entities.Period{}, err
	}

	query := `INSERT INTO periods (id, tenant, year, sequence, cycle, start_at, end_at, locked)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT (id) DO NOTHING`
	_, err = r.db.ExecContext(ctx, query,
		key.ID(),
		string(key.TenantID),
		key.Year,
		key.Sequence,
		key.Cycle.String(),
		p.Start.UTC().Format(time.RFC3339),
		p.End.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return entities.Period{}, fmt.Errorf("inserting period: %w", err)
	}
	return r.Get(ctx, key)
}

// Get returns the period for the key
func (r *PeriodRepository) Get(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	query := `SELECT tenant, year, sequence, cycle, start_at, end_at, locked
		FROM periods WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, key.ID())
	p, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return entities.Period{}, fmt.Errorf("period %s: %w", key.ID(), entities.ErrPeriodNotFound)
	}
	return p, err
}

// Current returns the tenant's period containing now
func (r *PeriodRepository) Current(ctx context.Context, tenant entities.TenantID, cycle entities.CycleKind, now time.Time) (entities.Period, error) {
	// Timestamps are stored as RFC3339 UTC, so lexical comparison
	// matches chronological order.
	query := `SELECT tenant, year, sequence, cycle, start_at, end_at, locked
		FROM periods
		WHERE tenant = ? AND cycle = ? AND start_at <= ? AND end_at > ?`
	nowStr := now.UTC().Format(time.RFC3339)
	row := r.db.QueryRowContext(ctx, query, string(tenant), cycle.String(), nowStr, nowStr)
	p, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return entities.Period{}, fmt.Errorf("no current %s period for %s: %w", cycle, tenant, entities.ErrPeriodNotFound)
	}
	return p, err
}

// SetLocked updates a period's lock flag
func (r *PeriodRepository) SetLocked(ctx context.Context, key entities.PeriodKey, locked bool) error {
	query := `UPDATE periods SET locked = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(locked), key.ID())
	if err != nil {
		return fmt.Errorf("updating period lock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking period lock update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("period %s: %w", key.ID(), entities.ErrPeriodNotFound)
	}
	return nil
}

// scanPeriod scans a single period from a *sql.Row.
func scanPeriod(row *sql.Row) (entities.Period, error) {
	var (
		tenant, cycleStr, startStr, endStr string
		year, sequence, locked             int
	)
	if err := row.Scan(&tenant, &year, &sequence, &cycleStr, &startStr, &endStr, &locked); err != nil {
		return entities.Period{}, err
	}

	cycle, err := entities.ParseCycleKind(cycleStr)
	if err != nil {
		return entities.Period{}, fmt.Errorf("stored period: %w", err)
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return entities.Period{}, fmt.Errorf("parsing period start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return entities.Period{}, fmt.Errorf("parsing period end: %w", err)
	}

	return entities.Period{
		PeriodKey: entities.PeriodKey{
			TenantID: entities.TenantID(tenant),
			Year:     year,
			Sequence: sequence,
			Cycle:    cycle,
		},
		Start:  start,
		End:    end,
		Locked: locked != 0,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
