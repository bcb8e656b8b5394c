package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
	"github.com/nmasri/laneplan/pkg/domain/services"
)

// PeriodRepository provides in-memory period storage
type PeriodRepository struct {
	mu       sync.RWMutex
	periods  map[string]entities.Period
	calendar *services.Calendar
}

// NewPeriodRepository creates a new in-memory period repository
func NewPeriodRepository() *PeriodRepository {
	return &PeriodRepository{
		periods:  make(map[string]entities.Period),
		calendar: services.NewCalendar(),
	}
}

// Verify interface compliance
var _ repositories.PeriodRepository = (*PeriodRepository)(nil)

// GetOrCreate returns the stored period for the key, creating it on
// first access.
func (r *PeriodRepository) GetOrCreate(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.periods[key.ID()]; ok {
		return p, nil
	}
	p, err := r.calendar.NewPeriod(key)
	if err != nil {
		return entities.Period{}, err
	}
	r.periods[key.ID()] = p
	return p, nil
}

// Get returns the period for the key
func (r *PeriodRepository) Get(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.periods[key.ID()]
	if !ok {
		return entities.Period{}, fmt.Errorf("period %s: %w", key.ID(), entities.ErrPeriodNotFound)
	}
	return p, nil
}

// Current returns the tenant's period containing now
func (r *PeriodRepository) Current(ctx context.Context, tenant entities.TenantID, cycle entities.CycleKind, now time.Time) (entities.Period, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.periods {
		if p.TenantID == tenant && p.Cycle == cycle && p.Contains(now) {
			return p, nil
		}
	}
	return entities.Period{}, fmt.Errorf("no current %s period for %s: %w", cycle, tenant, entities.ErrPeriodNotFound)
}

// SetLocked updates a period's lock flag
func (r *PeriodRepository) SetLocked(ctx context.Context, key entities.PeriodKey, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.periods[key.ID()]
	if !ok {
		return fmt.Errorf("period %s: %w", key.ID(), entities.ErrPeriodNotFound)
	}
	p.Locked = locked
	r.periods[key.ID()] = p
	return nil
}
