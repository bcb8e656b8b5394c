package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// DemandRepository implements repositories.DemandRepository on SQLite.
type DemandRepository struct {
	db *sql.DB
}

// NewDemandRepository creates a new SQLite-backed demand repository
func NewDemandRepository(db *sql.DB) *DemandRepository {
	return &DemandRepository{db: db}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// ListByPeriod returns all demand rows for one tenant and period
func (r *DemandRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.DemandRow, error) {
	query := `SELECT id, route_key, period_id, client_id, client_name, slot_count,
			d1, d2, d3, d4, d5, d6, d7, total
		FROM demand_rows WHERE tenant = ? AND period_id = ? ORDER BY route_key, client_id`
	rows, err := r.db.QueryContext(ctx, query, string(tenant), periodID)
	if err != nil {
		return nil, fmt.Errorf("listing demand rows: %w", err)
	}
	defer rows.Close()

	var result []entities.DemandRow
	for rows.Next() {
		var (
			row       entities.DemandRow
			slotCount int
			slots     [7]int64
			total     int64
		)
		if err := rows.Scan(
			&row.ID, &row.RouteKey, &row.PeriodID, &row.ClientID, &row.ClientName, &slotCount,
			&slots[0], &slots[1], &slots[2], &slots[3], &slots[4], &slots[5], &slots[6], &total,
		); err != nil {
			return nil, fmt.Errorf("scanning demand row: %w", err)
		}
		row.Slots = slotsFromColumns(slotCount, slots)
		row.StoredTotal = entities.Quantity(total)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating demand rows: %w", err)
	}
	return result, nil
}

// Save inserts or replaces a demand row, generating an ID when empty
func (r *DemandRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.DemandRow) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	slots := columnsFromSlots(row.Slots)

	query := `INSERT INTO demand_rows
			(id, tenant, period_id, route_key, client_id, client_name, slot_count,
			 d1, d2, d3, d4, d5, d6, d7, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			tenant = excluded.tenant,
			period_id = excluded.period_id,
			route_key = excluded.route_key,
			client_id = excluded.client_id,
			client_name = excluded.client_name,
			slot_count = excluded.slot_count,
			d1 = excluded.d1, d2 = excluded.d2, d3 = excluded.d3, d4 = excluded.d4,
			d5 = excluded.d5, d6 = excluded.d6, d7 = excluded.d7,
			total = excluded.total`
	_, err := r.db.ExecContext(ctx, query,
		row.ID, string(tenant), row.PeriodID, string(row.RouteKey),
		string(row.ClientID), row.ClientName, len(row.Slots),
		slots[0], slots[1], slots[2], slots[3], slots[4], slots[5], slots[6],
		int64(row.Slots.Total()),
	)
	if err != nil {
		return fmt.Errorf("saving demand row: %w", err)
	}
	return nil
}

// slotsFromColumns rebuilds the slot vector from the fixed seven-column
// layout; monthly rows use the first five columns.
func slotsFromColumns(slotCount int, cols [7]int64) entities.SlotVector {
	if slotCount < 0 || slotCount > len(cols) {
		slotCount = len(cols)
	}
	slots := make(entities.SlotVector, slotCount)
	for i := 0; i < slotCount; i++ {
		slots[i] = entities.Quantity(cols[i])
	}
	return slots
}

func columnsFromSlots(slots entities.SlotVector) [7]int64 {
	var cols [7]int64
	for i, q := range slots {
		if i >= len(cols) {
			break
		}
		cols[i] = int64(q)
	}
	return cols
}
