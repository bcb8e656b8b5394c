package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// ActualsRepository implements repositories.ActualsRepository on SQLite.
type ActualsRepository struct {
	db *sql.DB
}

// NewActualsRepository creates a new SQLite-backed actuals repository
func NewActualsRepository(db *sql.DB) *ActualsRepository {
	return &ActualsRepository{db: db}
}

// Verify interface compliance
var _ repositories.ActualsRepository = (*ActualsRepository)(nil)

// ListByPeriod returns all actual rows for one tenant and period
func (r *ActualsRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.ActualRow, error) {
	query := `SELECT route_key, period_id, requested, fulfilled
		FROM actual_rows WHERE tenant = ? AND period_id = ? ORDER BY route_key`
	rows, err := r.db.QueryContext(ctx, query, string(tenant), periodID)
	if err != nil {
		return nil, fmt.Errorf("listing actual rows: %w", err)
	}
	defer rows.Close()

	var result []entities.ActualRow
	for rows.Next() {
		var row entities.ActualRow
		if err := rows.Scan(&row.RouteKey, &row.PeriodID, &row.Requested, &row.Fulfilled); err != nil {
			return nil, fmt.Errorf("scanning actual row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actual rows: %w", err)
	}
	return result, nil
}

// Save inserts or replaces the actuals for a route within a period
func (r *ActualsRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.ActualRow) error {
	query := `INSERT INTO actual_rows (tenant, period_id, route_key, requested, fulfilled)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (tenant, period_id, route_key) DO UPDATE SET
			requested = excluded.requested,
			fulfilled = excluded.fulfilled`
	_, err := r.db.ExecContext(ctx, query,
		string(tenant), row.PeriodID, string(row.RouteKey),
		int64(row.Requested), int64(row.Fulfilled),
	)
	if err != nil {
		return fmt.Errorf("saving actual row: %w", err)
	}
	return nil
}
