package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/nmasri/laneplan/pkg/application/dto"
	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/repositories"
	"github.com/nmasri/laneplan/pkg/domain/services"
)

// Service orchestrates planning reports and the demand/supply write path
// over the repository layer. Reports are pure projections over the rows
// the repositories return: nothing here is persisted, and concurrent
// report requests need no coordination.
type Service struct {
	periods   repositories.PeriodRepository
	demand    repositories.DemandRepository
	supply    repositories.SupplyRepository
	actuals   repositories.ActualsRepository
	calendar  *services.Calendar
	validator *services.RowValidator
	now       func() time.Time
}

// NewService creates a planning service over the provided repositories
func NewService(
	periods repositories.PeriodRepository,
	demand repositories.DemandRepository,
	supply repositories.SupplyRepository,
	actuals repositories.ActualsRepository,
) *Service {
	return &Service{
		periods:   periods,
		demand:    demand,
		supply:    supply,
		actuals:   actuals,
		calendar:  services.NewCalendar(),
		validator: services.NewRowValidator(),
		now:       time.Now,
	}
}

// GapReport reconciles aggregated demand against aggregated supply for
// the period. The period must already exist.
func (s *Service) GapReport(ctx context.Context, key entities.PeriodKey) (*dto.GapReport, error) {
	period, err := s.periods.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading period %s: %w", key.ID(), err)
	}

	demandRows, err := s.demand.ListByPeriod(ctx, key.TenantID, period.ID())
	if err != nil {
		return nil, fmt.Errorf("listing demand for %s: %w", period.ID(), err)
	}
	supplyRows, err := s.supply.ListByPeriod(ctx, key.TenantID, period.ID())
	if err != nil {
		return nil, fmt.Errorf("listing supply for %s: %w", period.ID(), err)
	}

	demandAgg, err := AggregateDemand(period.ID(), demandRows)
	if err != nil {
		return nil, fmt.Errorf("aggregating demand for %s: %w", period.ID(), err)
	}
	supplyAgg, err := AggregateSupply(period.ID(), supplyRows)
	if err != nil {
		return nil, fmt.Errorf("aggregating supply for %s: %w", period.ID(), err)
	}

	return &dto.GapReport{
		Period:      period,
		Records:     ReconcileGap(demandAgg, supplyAgg),
		GeneratedAt: s.now().UTC(),
	}, nil
}

// DispatchReport builds the supplier-centric dispatch sheet for the period
func (s *Service) DispatchReport(ctx context.Context, key entities.PeriodKey) (*dto.DispatchReport, error) {
	period, err := s.periods.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading period %s: %w", key.ID(), err)
	}

	supplyRows, err := s.supply.ListByPeriod(ctx, key.TenantID, period.ID())
	if err != nil {
		return nil, fmt.Errorf("listing supply for %s: %w", period.ID(), err)
	}

	bySupplier, err := AggregateBySupplier(period.ID(), supplyRows)
	if err != nil {
		return nil, fmt.Errorf("grouping supply by supplier for %s: %w", period.ID(), err)
	}

	return &dto.DispatchReport{
		Period:      period,
		Sheet:       ProjectDispatch(period.ID(), bySupplier),
		GeneratedAt: s.now().UTC(),
	}, nil
}

// AccuracyReport reconciles forecasted demand against observed actuals
// for the period.
func (s *Service) AccuracyReport(ctx context.Context, key entities.PeriodKey) (*dto.AccuracyReport, error) {
	period, err := s.periods.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading period %s: %w", key.ID(), err)
	}

	demandRows, err := s.demand.ListByPeriod(ctx, key.TenantID, period.ID())
	if err != nil {
		return nil, fmt.Errorf("listing demand for %s: %w", period.ID(), err)
	}
	actualRows, err := s.actuals.ListByPeriod(ctx, key.TenantID, period.ID())
	if err != nil {
		return nil, fmt.Errorf("listing actuals for %s: %w", period.ID(), err)
	}

	demandAgg, err := AggregateDemand(period.ID(), demandRows)
	if err != nil {
		return nil, fmt.Errorf("aggregating demand for %s: %w", period.ID(), err)
	}

	records, summary := ReconcileAccuracy(demandAgg, ActualsByRoute(actualRows))
	return &dto.AccuracyReport{
		Period:      period,
		Records:     records,
		Summary:     summary,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// SaveDemand validates and stores a demand row in the given period,
// creating the period lazily. Writes against locked periods are rejected.
func (s *Service) SaveDemand(ctx context.Context, key entities.PeriodKey, row entities.DemandRow) error {
	if err := s.validator.ValidateDemand(row); err != nil {
		return err
	}
	period, err := s.writablePeriod(ctx, key)
	if err != nil {
		return err
	}
	row.PeriodID = period.ID()
	row.StoredTotal = row.Slots.Total()
	if err := s.demand.Save(ctx, key.TenantID, row); err != nil {
		return fmt.Errorf("saving demand row for %s: %w", row.RouteKey, err)
	}
	return nil
}

// SaveSupply validates and stores a supply row in the given period,
// with the same locked-period rule as SaveDemand.
func (s *Service) SaveSupply(ctx context.Context, key entities.PeriodKey, row entities.SupplyRow) error {
	if err := s.validator.ValidateSupply(row); err != nil {
		return err
	}
	period, err := s.writablePeriod(ctx, key)
	if err != nil {
		return err
	}
	row.PeriodID = period.ID()
	row.StoredTotal = row.Slots.Total()
	if err := s.supply.Save(ctx, key.TenantID, row); err != nil {
		return fmt.Errorf("saving supply row for %s: %w", row.RouteKey, err)
	}
	return nil
}

// SaveActuals stores an observed-fulfillment row. Actuals arrive after
// the fact, so locked periods still accept them.
func (s *Service) SaveActuals(ctx context.Context, key entities.PeriodKey, row entities.ActualRow) error {
	if row.RouteKey == "" {
		return fmt.Errorf("actual row has empty route key: %w", entities.ErrValidation)
	}
	period, err := s.periods.GetOrCreate(ctx, key)
	if err != nil {
		return fmt.Errorf("resolving period %s: %w", key.ID(), err)
	}
	row.PeriodID = period.ID()
	if err := s.actuals.Save(ctx, key.TenantID, row); err != nil {
		return fmt.Errorf("saving actuals for %s: %w", row.RouteKey, err)
	}
	return nil
}

// SetLocked locks or unlocks a period
func (s *Service) SetLocked(ctx context.Context, key entities.PeriodKey, locked bool) error {
	if err := s.periods.SetLocked(ctx, key, locked); err != nil {
		return fmt.Errorf("updating lock on %s: %w", key.ID(), err)
	}
	return nil
}

// CurrentPeriod returns the tenant's period containing the current
// instant, creating it lazily when it does not exist yet.
func (s *Service) CurrentPeriod(ctx context.Context, tenant entities.TenantID, cycle entities.CycleKind) (entities.Period, error) {
	key := s.calendar.KeyFor(tenant, cycle, s.now())
	period, err := s.periods.GetOrCreate(ctx, key)
	if err != nil {
		return entities.Period{}, fmt.Errorf("resolving current period for %s: %w", tenant, err)
	}
	return period, nil
}

func (s *Service) writablePeriod(ctx context.Context, key entities.PeriodKey) (entities.Period, error) {
	period, err := s.periods.GetOrCreate(ctx, key)
	if err != nil {
		return entities.Period{}, fmt.Errorf("resolving period %s: %w", key.ID(), err)
	}
	if period.Locked {
		return entities.Period{}, fmt.Errorf("period %s: %w", period.ID(), entities.ErrPeriodLocked)
	}
	return period, nil
}
