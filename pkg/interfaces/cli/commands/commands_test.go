package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/memory"
)

func TestPeriodKey_Explicit(t *testing.T) {
	flags := &rootFlags{tenant: "acme", cycle: "weekly", year: 2026, seq: 35}
	key, err := flags.periodKey()
	require.NoError(t, err)
	assert.Equal(t, "acme:2026-W35", key.ID())
}

func TestPeriodKey_MissingTenant(t *testing.T) {
	flags := &rootFlags{cycle: "weekly", year: 2026, seq: 35}
	_, err := flags.periodKey()
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestPeriodKey_DefaultsToCurrent(t *testing.T) {
	flags := &rootFlags{tenant: "acme", cycle: "monthly"}
	key, err := flags.periodKey()
	require.NoError(t, err)
	assert.Equal(t, entities.Monthly, key.Cycle)
	assert.NotZero(t, key.Year)
	assert.NotZero(t, key.Sequence)
}

func TestSeed(t *testing.T) {
	svc := planning.NewService(
		memory.NewPeriodRepository(),
		memory.NewDemandRepository(),
		memory.NewSupplyRepository(),
		memory.NewActualsRepository(),
	)
	ctx := context.Background()
	key := entities.PeriodKey{TenantID: "demo", Year: 2026, Sequence: 35, Cycle: entities.Weekly}

	require.NoError(t, seed(ctx, svc, key, 3, true))

	gap, err := svc.GapReport(ctx, key)
	require.NoError(t, err)
	assert.Len(t, gap.Records, 3)
	for _, rec := range gap.Records {
		assert.Len(t, rec.DemandBreakdown, len(seedClients))
		assert.Len(t, rec.SupplyBreakdown, len(seedSuppliers))
	}

	accuracy, err := svc.AccuracyReport(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 3, accuracy.Summary.RouteCount)
}
