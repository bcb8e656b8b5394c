package planning_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/memory"
)

func newService() *planning.Service {
	return planning.NewService(
		memory.NewPeriodRepository(),
		memory.NewDemandRepository(),
		memory.NewSupplyRepository(),
		memory.NewActualsRepository(),
	)
}

func week35(tenant entities.TenantID) entities.PeriodKey {
	return entities.PeriodKey{TenantID: tenant, Year: 2026, Sequence: 35, Cycle: entities.Weekly}
}

func TestService_GapReport_EndToEnd(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	key := week35("acme")

	require.NoError(t, svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey: "RUHJED", ClientID: "c1", ClientName: "Client A",
		Slots: entities.SlotVector{10, 10, 10, 10, 10, 10, 10},
	}))
	require.NoError(t, svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey: "RUHJED", ClientID: "c2", ClientName: "Client B",
		Slots: entities.SlotVector{5, 0, 5, 0, 5, 0, 5},
	}))
	require.NoError(t, svc.SaveSupply(ctx, key, entities.SupplyRow{
		RouteKey: "RUHJED", SupplierID: "s1", SupplierName: "Supplier X",
		Slots: entities.SlotVector{12, 12, 12, 12, 12, 12, 12},
	}))

	report, err := svc.GapReport(ctx, key)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)

	rec := report.Records[0]
	assert.Equal(t, entities.Quantity(90), rec.TargetTotal)
	assert.Equal(t, entities.Quantity(84), rec.CommittedTotal)
	assert.Equal(t, entities.Quantity(6), rec.GapTotal)
	assert.Equal(t, 7, rec.GapPercent)
	assert.Equal(t, "acme:2026-W35", report.Period.ID())
}

func TestService_GapReport_UnknownPeriod(t *testing.T) {
	svc := newService()
	_, err := svc.GapReport(context.Background(), week35("acme"))
	assert.ErrorIs(t, err, entities.ErrPeriodNotFound)
}

func TestService_SaveDemand_LockedPeriod(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	key := week35("acme")

	row := entities.DemandRow{
		RouteKey: "RUHJED", ClientID: "c1", ClientName: "Client A",
		Slots: entities.SlotVector{1, 0, 0, 0, 0, 0, 0},
	}
	require.NoError(t, svc.SaveDemand(ctx, key, row))

	require.NoError(t, svc.SetLocked(ctx, key, true))
	assert.ErrorIs(t, svc.SaveDemand(ctx, key, row), entities.ErrPeriodLocked)
	assert.ErrorIs(t, svc.SaveSupply(ctx, key, entities.SupplyRow{
		RouteKey: "RUHJED", SupplierID: "s1",
		Slots: entities.SlotVector{1, 0, 0, 0, 0, 0, 0},
	}), entities.ErrPeriodLocked)

	// Actuals arrive after the fact and bypass the lock.
	assert.NoError(t, svc.SaveActuals(ctx, key, entities.ActualRow{
		RouteKey: "RUHJED", Requested: 5, Fulfilled: 5,
	}))

	require.NoError(t, svc.SetLocked(ctx, key, false))
	assert.NoError(t, svc.SaveDemand(ctx, key, row))
}

func TestService_SaveDemand_Validation(t *testing.T) {
	svc := newService()
	err := svc.SaveDemand(context.Background(), week35("acme"), entities.DemandRow{
		RouteKey: "", ClientID: "c1",
		Slots: entities.SlotVector{1, 0, 0, 0, 0, 0, 0},
	})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestService_AccuracyReport(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	key := week35("acme")

	require.NoError(t, svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey: "RUHJED", ClientID: "c1", ClientName: "Client A",
		Slots: entities.SlotVector{10, 10, 10, 10, 10, 10, 10},
	}))
	require.NoError(t, svc.SaveActuals(ctx, key, entities.ActualRow{
		RouteKey: "RUHJED", Requested: 77, Fulfilled: 70,
	}))

	report, err := svc.AccuracyReport(ctx, key)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.Equal(t, entities.Quantity(7), report.Records[0].Variance)
	assert.Equal(t, 90, report.Records[0].AccuracyPercent)
	assert.Equal(t, entities.Quantity(70), report.Summary.Forecasted)
}

func TestService_DispatchReport(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	key := week35("acme")

	require.NoError(t, svc.SaveSupply(ctx, key, entities.SupplyRow{
		RouteKey: "RUHJED", SupplierID: "s1", SupplierName: "Alpha",
		Slots: entities.SlotVector{1, 1, 1, 1, 1, 1, 1},
	}))
	require.NoError(t, svc.SaveSupply(ctx, key, entities.SupplyRow{
		RouteKey: "JEDDMM", SupplierID: "s2", SupplierName: "Beta",
		Slots: entities.SlotVector{2, 2, 2, 2, 2, 2, 2},
	}))

	report, err := svc.DispatchReport(ctx, key)
	require.NoError(t, err)
	require.Len(t, report.Sheet.Suppliers, 2)
	assert.Equal(t, entities.Quantity(21), report.Sheet.GrandTotal)
}

func TestService_CurrentPeriod(t *testing.T) {
	svc := newService()
	period, err := svc.CurrentPeriod(context.Background(), "acme", entities.Weekly)
	require.NoError(t, err)
	assert.True(t, period.Contains(time.Now()))

	// Idempotent: asking again resolves the same period.
	again, err := svc.CurrentPeriod(context.Background(), "acme", entities.Weekly)
	require.NoError(t, err)
	assert.Equal(t, period.ID(), again.ID())
}
