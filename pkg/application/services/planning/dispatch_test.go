package planning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

func TestAggregateBySupplier_GroupsRoutesWithinSupplier(t *testing.T) {
	rows := []entities.SupplyRow{
		supplyRow("RUHJED", "s1", "Alpha Haulage", 1, 1, 1, 1, 1, 1, 1),
		supplyRow("JEDDMM", "s1", "Alpha Haulage", 2, 0, 0, 0, 0, 0, 0),
		supplyRow("RUHJED", "s1", "Alpha Haulage", 1, 0, 0, 0, 0, 0, 1),
		supplyRow("RUHJED", "s2", "Zeta Freight", 5, 5, 5, 5, 5, 5, 5),
	}

	bySupplier, err := AggregateBySupplier("p", rows)
	require.NoError(t, err)
	require.Len(t, bySupplier, 2)

	alpha := bySupplier["s1"]
	require.NotNil(t, alpha)
	require.Len(t, alpha.Routes, 2)
	for _, line := range alpha.Routes {
		if line.RouteKey == "RUHJED" {
			// Two commitments on the same route fold together.
			assert.Equal(t, entities.SlotVector{2, 1, 1, 1, 1, 1, 2}, line.Slots)
			assert.Equal(t, entities.Quantity(9), line.Total)
		}
	}
}

func TestAggregateBySupplier_EmptyRouteKey(t *testing.T) {
	rows := []entities.SupplyRow{supplyRow("", "s1", "Alpha", 1, 0, 0, 0, 0, 0, 0)}
	_, err := AggregateBySupplier("p", rows)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestProjectDispatch_Ordering(t *testing.T) {
	rows := []entities.SupplyRow{
		supplyRow("RUHJED", "s2", "Zeta Freight", 1, 0, 0, 0, 0, 0, 0),
		supplyRow("JEDDMM", "s1", "Alpha Haulage", 1, 0, 0, 0, 0, 0, 0),
		supplyRow("DMMRUH", "s1", "Alpha Haulage", 1, 0, 0, 0, 0, 0, 0),
	}

	bySupplier, err := AggregateBySupplier("p", rows)
	require.NoError(t, err)
	sheet := ProjectDispatch("p", bySupplier)

	require.Len(t, sheet.Suppliers, 2)
	assert.Equal(t, "Alpha Haulage", sheet.Suppliers[0].SupplierName)
	assert.Equal(t, "Zeta Freight", sheet.Suppliers[1].SupplierName)

	// Routes within a supplier are ordered by route key.
	alpha := sheet.Suppliers[0]
	require.Len(t, alpha.Routes, 2)
	assert.Equal(t, entities.RouteKey("DMMRUH"), alpha.Routes[0].RouteKey)
	assert.Equal(t, entities.RouteKey("JEDDMM"), alpha.Routes[1].RouteKey)
}

func TestProjectDispatch_TotalIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	var rows []entities.SupplyRow
	suppliers := []struct {
		id   string
		name string
	}{{"s1", "Alpha"}, {"s2", "Beta"}, {"s3", "Gamma"}}
	routes := []entities.RouteKey{"RUHJED", "JEDDMM", "DMMRUH", "JEDRUH"}

	for _, s := range suppliers {
		for _, route := range routes {
			slots := make([]entities.Quantity, 7)
			for d := range slots {
				slots[d] = entities.Quantity(rng.Intn(15))
			}
			rows = append(rows, supplyRow(route, s.id, s.name, slots...))
		}
	}

	bySupplier, err := AggregateBySupplier("p", rows)
	require.NoError(t, err)
	sheet := ProjectDispatch("p", bySupplier)

	// grandTotals == Σ supplierTotals == Σ Σ route slots
	var fromSuppliers entities.SlotVector
	for _, s := range sheet.Suppliers {
		var fromRoutes entities.SlotVector
		for _, line := range s.Routes {
			fromRoutes = entities.AddSlots(fromRoutes, line.Slots)
		}
		assert.Equal(t, fromRoutes, s.Totals, "supplier %s totals", s.SupplierID)
		assert.Equal(t, s.Totals.Total(), s.Total)
		fromSuppliers = entities.AddSlots(fromSuppliers, s.Totals)
	}
	assert.Equal(t, fromSuppliers, sheet.GrandTotals)
	assert.Equal(t, sheet.GrandTotals.Total(), sheet.GrandTotal)
}

func TestProjectDispatch_Empty(t *testing.T) {
	sheet := ProjectDispatch("p", map[entities.SupplierID]*entities.SupplierDispatchRow{})
	assert.Empty(t, sheet.Suppliers)
	assert.Equal(t, entities.Quantity(0), sheet.GrandTotal)
}
