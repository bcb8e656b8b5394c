package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// SupplyRepository provides in-memory supply-row storage, keyed by
// tenant then period.
type SupplyRepository struct {
	mu   sync.RWMutex
	rows map[entities.TenantID]map[string][]entities.SupplyRow
}

// NewSupplyRepository creates a new in-memory supply repository
func NewSupplyRepository() *SupplyRepository {
	return &SupplyRepository{
		rows: make(map[entities.TenantID]map[string][]entities.SupplyRow),
	}
}

// Verify interface compliance
var _ repositories.SupplyRepository = (*SupplyRepository)(nil)

// ListByPeriod returns the tenant's supply rows for a period
func (r *SupplyRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.SupplyRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.rows[tenant][periodID]
	out := make([]entities.SupplyRow, len(stored))
	for i, row := range stored {
		out[i] = row
		out[i].Slots = row.Slots.Clone()
	}
	return out, nil
}

// Save inserts the row, or replaces it when a row with the same ID exists
func (r *SupplyRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.SupplyRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	row.Slots = row.Slots.Clone()

	byPeriod, ok := r.rows[tenant]
	if !ok {
		byPeriod = make(map[string][]entities.SupplyRow)
		r.rows[tenant] = byPeriod
	}

	rows := byPeriod[row.PeriodID]
	for i := range rows {
		if rows[i].ID == row.ID {
			rows[i] = row
			return nil
		}
	}
	byPeriod[row.PeriodID] = append(rows, row)
	return nil
}
