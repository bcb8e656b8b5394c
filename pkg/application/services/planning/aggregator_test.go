package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

func demandRow(route entities.RouteKey, clientID, clientName string, slots ...entities.Quantity) entities.DemandRow {
	return entities.DemandRow{
		RouteKey:   route,
		PeriodID:   "acme:2026-W35",
		ClientID:   entities.ClientID(clientID),
		ClientName: clientName,
		Slots:      entities.SlotVector(slots),
	}
}

func supplyRow(route entities.RouteKey, supplierID, supplierName string, slots ...entities.Quantity) entities.SupplyRow {
	return entities.SupplyRow{
		RouteKey:     route,
		PeriodID:     "acme:2026-W35",
		SupplierID:   entities.SupplierID(supplierID),
		SupplierName: supplierName,
		Slots:        entities.SlotVector(slots),
	}
}

func TestAggregateDemand_GroupsByRoute(t *testing.T) {
	rows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "Client A", 10, 10, 10, 10, 10, 10, 10),
		demandRow("RUHJED", "c2", "Client B", 5, 0, 5, 0, 5, 0, 5),
		demandRow("JEDDMM", "c1", "Client A", 50, 0, 0, 0, 0, 0, 0),
	}

	agg, err := AggregateDemand("acme:2026-W35", rows)
	require.NoError(t, err)
	require.Len(t, agg, 2)

	ruhjed := agg["RUHJED"]
	require.NotNil(t, ruhjed)
	assert.Equal(t, entities.SlotVector{15, 10, 15, 10, 15, 10, 15}, ruhjed.Slots)
	assert.Equal(t, entities.Quantity(90), ruhjed.Slots.Total())
	assert.Equal(t, 2, ruhjed.ContributorCount)
	assert.Equal(t, "acme:2026-W35", ruhjed.PeriodID)

	require.Len(t, ruhjed.Breakdown, 2)
	assert.Equal(t, "Client A", ruhjed.Breakdown[0].ContributorName)
	assert.Equal(t, entities.Quantity(70), ruhjed.Breakdown[0].Total)
	assert.Equal(t, "Client B", ruhjed.Breakdown[1].ContributorName)
	assert.Equal(t, entities.Quantity(20), ruhjed.Breakdown[1].Total)
}

func TestAggregateDemand_RecomputesTotals(t *testing.T) {
	row := demandRow("RUHJED", "c1", "Client A", 1, 1, 1, 1, 1, 1, 1)
	row.StoredTotal = 999 // caller drift: the stored column is never trusted

	agg, err := AggregateDemand("p", []entities.DemandRow{row})
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(7), agg["RUHJED"].Slots.Total())
}

func TestAggregateDemand_TotalAdditivity(t *testing.T) {
	rows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "A", 3, 1, 4, 1, 5, 9, 2),
		demandRow("RUHJED", "c2", "B", 2, 7, 1, 8, 2, 8, 1),
		demandRow("RUHJED", "c3", "C", 0, 0, 0, 0, 0, 0, 6),
	}

	agg, err := AggregateDemand("p", rows)
	require.NoError(t, err)

	var want entities.Quantity
	for _, r := range rows {
		want += r.Slots.Total()
	}
	got := agg["RUHJED"]
	assert.Equal(t, want, got.Slots.Total())

	var perSlot entities.Quantity
	for _, q := range got.Slots {
		perSlot += q
	}
	assert.Equal(t, want, perSlot)
}

func TestAggregateDemand_EmptyInput(t *testing.T) {
	agg, err := AggregateDemand("p", nil)
	require.NoError(t, err)
	assert.Empty(t, agg)
}

func TestAggregateDemand_EmptyRouteKeyFailsLoudly(t *testing.T) {
	rows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "A", 1, 0, 0, 0, 0, 0, 0),
		demandRow("", "c2", "B", 1, 0, 0, 0, 0, 0, 0),
	}
	_, err := AggregateDemand("p", rows)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestAggregateDemand_DoesNotAliasRowSlots(t *testing.T) {
	row := demandRow("RUHJED", "c1", "A", 1, 2, 3, 4, 5, 6, 7)
	agg, err := AggregateDemand("p", []entities.DemandRow{row})
	require.NoError(t, err)

	row.Slots[0] = 100
	assert.Equal(t, entities.Quantity(1), agg["RUHJED"].Breakdown[0].Slots[0])
}

func TestAggregateSupply_GroupsBySupplierBreakdown(t *testing.T) {
	rows := []entities.SupplyRow{
		supplyRow("RUHJED", "s2", "Zeta Freight", 1, 1, 1, 1, 1, 1, 1),
		supplyRow("RUHJED", "s1", "Alpha Haulage", 2, 2, 2, 2, 2, 2, 2),
	}

	agg, err := AggregateSupply("p", rows)
	require.NoError(t, err)

	ruhjed := agg["RUHJED"]
	require.Len(t, ruhjed.Breakdown, 2)
	assert.Equal(t, "Alpha Haulage", ruhjed.Breakdown[0].ContributorName)
	assert.Equal(t, "Zeta Freight", ruhjed.Breakdown[1].ContributorName)
	assert.Equal(t, entities.Quantity(21), ruhjed.Slots.Total())
}

func TestAggregate_MonthlySlots(t *testing.T) {
	rows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "A", 10, 20, 30, 40, 50),
		demandRow("RUHJED", "c2", "B", 1, 2, 3, 4, 5),
	}
	agg, err := AggregateDemand("acme:2026-M08", rows)
	require.NoError(t, err)

	got := agg["RUHJED"]
	assert.Equal(t, entities.SlotVector{11, 22, 33, 44, 55}, got.Slots)
	assert.Equal(t, entities.Quantity(165), got.Slots.Total())
}
