package repositories

import (
	"context"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// ActualsRepository provides access to observed-fulfillment rows imported
// from the analytics feed. The importing layer has already normalized the
// feed's lane identifier to the planning RouteKey.
type ActualsRepository interface {
	// ListByPeriod returns all actual rows for one tenant and period.
	ListByPeriod(ctx context.Context, tenant entities.TenantID, periodID string) ([]entities.ActualRow, error)

	// Save inserts or replaces the actuals for a route within a period.
	Save(ctx context.Context, tenant entities.TenantID, row entities.ActualRow) error
}
