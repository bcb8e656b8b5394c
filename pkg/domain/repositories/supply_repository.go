package repositories

import (
	"context"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// SupplyRepository provides access to supply-commitment rows, scoped to a
// single tenant the same way DemandRepository is.
type SupplyRepository interface {
	// ListByPeriod returns all supply rows for one tenant and period.
	ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.SupplyRow, error)

	// Save inserts or replaces a row. The row's ID is generated when
	// empty.
	Save(ctx context.Context, tenant entities.TenantID, row entities.SupplyRow) error
}
