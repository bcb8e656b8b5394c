package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// SupplyRepository implements repositories.SupplyRepository on SQLite.
type SupplyRepository struct {
	db *sql.DB
}

// NewSupplyRepository creates a new SQLite-backed supply repository
func NewSupplyRepository(db *sql.DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

// Verify interface compliance
var _ repositories.SupplyRepository = (*SupplyRepository)(nil)

// ListByPeriod returns all supply rows for one tenant and period
func (r *SupplyRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.SupplyRow, error) {
	query := `SELECT id, route_key, period_id, supplier_id, supplier_name, slot_count,
			d1, d2, d3, d4, d5, d6, d7, total
		FROM supply_rows WHERE tenant = ? AND period_id = ? ORDER BY route_key, supplier_id`
	rows, err := r.db.QueryContext(ctx, query, string(tenant), periodID)
	if err != nil {
		return nil, fmt.Errorf("listing supply rows: %w", err)
	}
	defer rows.Close()

	var result []entities.SupplyRow
	for rows.Next() {
		var (
			row       entities.SupplyRow
			slotCount int
			slots     [7]int64
			total     int64
		)
		if err := rows.Scan(
			&row.ID, &row.RouteKey, &row.PeriodID, &row.SupplierID, &row.SupplierName, &slotCount,
			&slots[0], &slots[1], &slots[2], &slots[3], &slots[4], &slots[5], &slots[6], &total,
		); err != nil {
			return nil, fmt.Errorf("scanning supply row: %w", err)
		}
		row.Slots = slotsFromColumns(slotCount, slots)
		row.StoredTotal = entities.Quantity(total)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating supply rows: %w", err)
	}
	return result, nil
}

// Save inserts or replaces a supply row, generating an ID when empty
func (r *SupplyRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.SupplyRow) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	slots := columnsFromSlots(row.Slots)

	query := `INSERT INTO supply_rows
			(id, tenant, period_id, route_key, supplier_id, supplier_name, slot_count,
			 d1, d2, d3, d4, d5, d6, d7, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			tenant = excluded.tenant,
			period_id = excluded.period_id,
			route_key = excluded.route_key,
			supplier_id = excluded.supplier_id,
			supplier_name = excluded.supplier_name,
			slot_count = excluded.slot_count,
			d1 = excluded.d1, d2 = excluded.d2, d3 = excluded.d3, d4 = excluded.d4,
			d5 = excluded.d5, d6 = excluded.d6, d7 = excluded.d7,
			total = excluded.total`
	_, err := r.db.ExecContext(ctx, query,
		row.ID, string(tenant), row.PeriodID, string(row.RouteKey),
		string(row.SupplierID), row.SupplierName, len(row.Slots),
		slots[0], slots[1], slots[2], slots[3], slots[4], slots[5], slots[6],
		int64(row.Slots.Total()),
	)
	if err != nil {
		return fmt.Errorf("saving supply row: %w", err)
	}
	return nil
}
