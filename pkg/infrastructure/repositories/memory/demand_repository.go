package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// DemandRepository provides in-memory demand-row storage, keyed by
// tenant then period.
type DemandRepository struct {
	mu   sync.RWMutex
	rows map[entities.TenantID]map[string][]entities.DemandRow
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		rows: make(map[entities.TenantID]map[string][]entities.DemandRow),
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// ListByPeriod returns the tenant's demand rows for a period
func (r *DemandRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.DemandRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.rows[tenant][periodID]
	out := make([]entities.DemandRow, len(stored))
	for i, row := range stored {
		out[i] = row
		out[i].Slots = row.Slots.Clone()
	}
	return out, nil
}

// Save inserts the row, or replaces it when a row with the same ID exists
func (r *DemandRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.DemandRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	row.Slots = row.Slots.Clone()

	byPeriod, ok := r.rows[tenant]
	if !ok {
		byPeriod = make(map[string][]entities.DemandRow)
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
