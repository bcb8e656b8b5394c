package planning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// The canonical planning scenario: two clients forecasting RUHJED against
// one supplier commitment, plus a completely unsupplied route.
func TestReconcileGap_Scenario(t *testing.T) {
	demandRows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "Client A", 10, 10, 10, 10, 10, 10, 10),
		demandRow("RUHJED", "c2", "Client B", 5, 0, 5, 0, 5, 0, 5),
		demandRow("JEDDMM", "c1", "Client A", 10, 10, 10, 10, 10, 0, 0),
	}
	supplyRows := []entities.SupplyRow{
		supplyRow("RUHJED", "s1", "Supplier X", 12, 12, 12, 12, 12, 12, 12),
	}

	demand, err := AggregateDemand("p", demandRows)
	require.NoError(t, err)
	supply, err := AggregateSupply("p", supplyRows)
	require.NoError(t, err)

	records := ReconcileGap(demand, supply)
	require.Len(t, records, 2)

	// JEDDMM has the larger gap (50 vs 6) so it sorts first.
	jeddmm := records[0]
	assert.Equal(t, entities.RouteKey("JEDDMM"), jeddmm.RouteKey)
	assert.Equal(t, entities.Quantity(50), jeddmm.TargetTotal)
	assert.Equal(t, entities.Quantity(0), jeddmm.CommittedTotal)
	assert.Equal(t, entities.Quantity(50), jeddmm.GapTotal)
	assert.Equal(t, 100, jeddmm.GapPercent)
	assert.Len(t, jeddmm.Committed, 7)
	assert.Empty(t, jeddmm.SupplyBreakdown)

	ruhjed := records[1]
	assert.Equal(t, entities.RouteKey("RUHJED"), ruhjed.RouteKey)
	assert.Equal(t, entities.Quantity(90), ruhjed.TargetTotal)
	assert.Equal(t, entities.Quantity(84), ruhjed.CommittedTotal)
	assert.Equal(t, entities.Quantity(6), ruhjed.GapTotal)
	assert.Equal(t, 7, ruhjed.GapPercent) // round(6/90*100)
	assert.Equal(t, entities.SlotVector{3, -2, 3, -2, 3, -2, 3}, ruhjed.Gap)
	assert.Len(t, ruhjed.DemandBreakdown, 2)
	assert.Len(t, ruhjed.SupplyBreakdown, 1)
}

func TestReconcileGap_OuterJoinCompleteness(t *testing.T) {
	demandRows := []entities.DemandRow{
		demandRow("RUHJED", "c1", "A", 1, 0, 0, 0, 0, 0, 0),
		demandRow("JEDDMM", "c1", "A", 2, 0, 0, 0, 0, 0, 0),
	}
	supplyRows := []entities.SupplyRow{
		supplyRow("JEDDMM", "s1", "X", 1, 0, 0, 0, 0, 0, 0),
		supplyRow("DMMRUH", "s1", "X", 3, 0, 0, 0, 0, 0, 0),
	}

	demand, err := AggregateDemand("p", demandRows)
	require.NoError(t, err)
	supply, err := AggregateSupply("p", supplyRows)
	require.NoError(t, err)

	records := ReconcileGap(demand, supply)

	// |keys(D) ∪ keys(S)| routes, no duplicates, none dropped.
	require.Len(t, records, 3)
	seen := map[entities.RouteKey]bool{}
	for _, r := range records {
		assert.False(t, seen[r.RouteKey], "duplicate route %s", r.RouteKey)
		seen[r.RouteKey] = true
	}
	assert.True(t, seen["RUHJED"] && seen["JEDDMM"] && seen["DMMRUH"])

	// Supply-only route still carries a zero target and a 0 gap percent.
	for _, r := range records {
		if r.RouteKey == "DMMRUH" {
			assert.Equal(t, entities.Quantity(0), r.TargetTotal)
			assert.Equal(t, entities.Quantity(-3), r.GapTotal)
			assert.Equal(t, 0, r.GapPercent)
			assert.Len(t, r.Target, 7)
		}
	}
}

func TestReconcileGap_GapIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var demandRows []entities.DemandRow
	var supplyRows []entities.SupplyRow
	routes := []entities.RouteKey{"RUHJED", "JEDRUH", "DMMJED", "JEDDMM", "RUHDMM"}
	for i, route := range routes {
		for c := 0; c < 1+i%3; c++ {
			slots := make([]entities.Quantity, 7)
			for d := range slots {
				slots[d] = entities.Quantity(rng.Intn(20))
			}
			demandRows = append(demandRows, demandRow(route, "c", "Client", slots...))
		}
		if i%2 == 0 {
			slots := make([]entities.Quantity, 7)
			for d := range slots {
				slots[d] = entities.Quantity(rng.Intn(20))
			}
			supplyRows = append(supplyRows, supplyRow(route, "s", "Supplier", slots...))
		}
	}

	demand, err := AggregateDemand("p", demandRows)
	require.NoError(t, err)
	supply, err := AggregateSupply("p", supplyRows)
	require.NoError(t, err)

	for _, r := range ReconcileGap(demand, supply) {
		assert.Equal(t, r.TargetTotal-r.CommittedTotal, r.GapTotal, "route %s", r.RouteKey)
		assert.Equal(t, r.Gap.Total(), r.GapTotal, "route %s slot/total drift", r.RouteKey)
	}
}

func TestReconcileGap_DeterministicOrder(t *testing.T) {
	// Equal gaps sort by route key ascending, and reordering the input
	// rows must not change the output order.
	build := func(rows []entities.DemandRow) []entities.GapRecord {
		demand, err := AggregateDemand("p", rows)
		require.NoError(t, err)
		return ReconcileGap(demand, map[entities.RouteKey]*entities.AggregatedRoute{})
	}

	rows := []entities.DemandRow{
		demandRow("JEDRUH", "c1", "A", 5, 0, 0, 0, 0, 0, 0),
		demandRow("DMMJED", "c1", "A", 5, 0, 0, 0, 0, 0, 0),
		demandRow("RUHJED", "c1", "A", 5, 0, 0, 0, 0, 0, 0),
	}
	first := build(rows)

	reordered := []entities.DemandRow{rows[2], rows[0], rows[1]}
	second := build(reordered)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].RouteKey, second[i].RouteKey)
	}
	assert.Equal(t, entities.RouteKey("DMMJED"), first[0].RouteKey)
	assert.Equal(t, entities.RouteKey("JEDRUH"), first[1].RouteKey)
	assert.Equal(t, entities.RouteKey("RUHJED"), first[2].RouteKey)
}

func TestReconcileGap_EmptyInputs(t *testing.T) {
	records := ReconcileGap(nil, nil)
	assert.Empty(t, records)
}

func TestRoundedPercent(t *testing.T) {
	assert.Equal(t, 7, roundedPercent(6, 90))
	assert.Equal(t, 100, roundedPercent(90, 90))
	assert.Equal(t, 0, roundedPercent(5, 0))
	assert.Equal(t, -50, roundedPercent(-45, 90))
	assert.Equal(t, 67, roundedPercent(2, 3))
}
