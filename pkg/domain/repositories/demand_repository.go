package repositories

import (
	"context"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// DemandRepository provides access to demand-forecast rows. Every query
// is tenant-scoped at this layer; aggregation never sees another
// tenant's rows.
type DemandRepository interface {
	// ListByPeriod returns all demand rows for one tenant and period.
	ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.DemandRow, error)

	// Save inserts or replaces a row. The row's ID is generated when
	// empty.
	Save(ctx context.Context, tenant entities.TenantID, row entities.DemandRow) error
}
