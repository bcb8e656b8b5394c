package repositories

import (
	"context"
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// PeriodRepository provides access to planning periods
type PeriodRepository interface {
	// GetOrCreate returns the period for the key, creating it lazily on
	// first access. Creation is idempotent.
	GetOrCreate(ctx context.Context, key entities.PeriodKey) (entities.Period, error)

	// Get returns the period for the key or entities.ErrPeriodNotFound.
	Get(ctx context.Context, key entities.PeriodKey) (entities.Period, error)

	// Current returns the tenant's period whose window contains now,
	// or entities.ErrPeriodNotFound when none has been created yet.
	Current(ctx context.Context, tenant entities.TenantID, cycle entities.CycleKind, now time.Time) (entities.Period, error)

	// SetLocked updates the period's lock flag.
	SetLocked(ctx context.Context, key entities.PeriodKey, locked bool) error
}
