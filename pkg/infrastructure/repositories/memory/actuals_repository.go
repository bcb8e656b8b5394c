package memory

import (
	"context"
	"sync"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
)

// ActualsRepository provides in-memory actuals storage. One row per
// route within a period: saving for an existing route replaces it.
type ActualsRepository struct {
	mu   sync.RWMutex
	rows map[entities.TenantID]map[string][]entities.ActualRow
}

// NewActualsRepository creates a new in-memory actuals repository
func NewActualsRepository() *ActualsRepository {
	return &ActualsRepository{
		rows: make(map[entities.TenantID]map[string][]entities.ActualRow),
	}
}

// Verify interface compliance
var _ repositories.ActualsRepository = (*ActualsRepository)(nil)

// ListByPeriod returns the tenant's actual rows for a period
func (r *ActualsRepository) ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.ActualRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.rows[tenant][periodID]
	out := make([]entities.ActualRow, len(stored))
	copy(out, stored)
	return out, nil
}

// Save inserts or replaces the actuals for the row's route
func (r *ActualsRepository) Save(ctx context.Context, tenant entities.TenantID, row entities.ActualRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPeriod, ok := r.rows[tenant]
	if !ok {
		byPeriod = make(map[string][]entities.ActualRow)
		r.rows[tenant] = byPeriod
	}

	rows := byPeriod[row.PeriodID]
	for i := range rows {
		if rows[i].RouteKey == row.RouteKey {
			rows[i] = row
			return nil
		}
	}
	byPeriod[row.PeriodID] = append(rows, row)
	return nil
}
