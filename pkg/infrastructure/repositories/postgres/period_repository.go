// Package postgres implements the domain repositories on PostgreSQL for
// server deployments. The schema mirrors the sqlite package; queries use
// lib/pq placeholders and native time and boolean types.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
	"github.com/nmasri/laneplan/pkg/domain/services"
)

// PeriodRepository implements repositories.PeriodRepository on PostgreSQL.
type PeriodRepository struct {
	db       *sql.DB
	calendar *services.Calendar
}

// NewPeriodRepository creates a new PostgreSQL-backed period repository
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		ON CONFLICT (id) DO NOTHING`
	_, err = r.db.ExecContext(ctx, query,
		key.ID(),
		string(key.TenantID),
		key.Year,
		key.Sequence,
		key.Cycle.String(),
		p.Start.UTC(),
		p.End.UTC(),
	)
	if err != nil {
		return entities.Period{}, fmt.Errorf("inserting period: %w", err)
	}
	return r.Get(ctx, key)
}

// Get returns the period for the key
func (r *PeriodRepository) Get(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	query := `SELECT tenant, year, sequence, cycle, start_at, end_at, locked
		FROM periods WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, key.ID())
	p, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return entities.Period{}, fmt.Errorf("period %s: %w", key.ID(), entities.ErrPeriodNotFound)
	}
	return p, err
}

// Current returns the tenant's period containing now
func (r *PeriodRepository) Current(ctx context.Context, tenant entities.TenantID, cycle entities.CycleKind, now time.Time) (entities.Period, error) {
	query := `SELECT tenant, year, sequence, cycle, start_at, end_at, locked
		FROM periods
		WHERE tenant = $1 AND cycle = $2 AND start_at <= $3 AND end_at > $3`
	row := r.db.QueryRowContext(ctx, query, string(tenant), cycle.String(), now.UTC())
	p, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return entities.Period{}, fmt.Errorf("no current %s period for %s: %w", cycle, tenant, entities.ErrPeriodNotFound)
	}
	return p, err
}

// SetLocked updates a period's lock flag
func (r *PeriodRepository) SetLocked(ctx context.Context, key entities.PeriodKey, locked bool) error {
	query := `UPDATE periods SET locked = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, locked, key.ID())
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
		tenant, cycleStr string
		year, sequence   int
		start, end       time.Time
		locked           bool
	)
	if err := row.Scan(&tenant, &year, &sequence, &cycleStr, &start, &end, &locked); err != nil {
		return entities.Period{}, err
	}

	cycle, err := entities.ParseCycleKind(cycleStr)
	if err != nil {
		return entities.Period{}, fmt.Errorf("stored period: %w", err)
	}

	return entities.Period{
		PeriodKey: entities.PeriodKey{
			TenantID: entities.TenantID(tenant),
			Year:     year,
			Sequence: sequence,
			Cycle:    cycle,
		},
		Start:  start.UTC(),
		End:    end.UTC(),
		Locked: locked,
	}, nil
}
