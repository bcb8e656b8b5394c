package planning

import (
	"sort"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// ReconcileGap performs a full outer join of aggregated demand against
// aggregated supply on route key and computes per-slot and total gaps.
// Routes with demand but no supply appear with an all-zero committed
// vector, and vice versa: no route from either side is dropped.
//
// Both maps must describe the same period; sharing tenant and period
// scope is the caller's responsibility.
//
// Results are sorted by gap total descending so the worst-covered routes
// come first, with route key ascending breaking ties. Consumers paginate
// on this order, so it is part of the contract.
func ReconcileGap(
	demand map[entities.RouteKey]*entities.AggregatedRoute,
	supply map[entities.RouteKey]*entities.AggregatedRoute,
) []entities.GapRecord {
	keys := make(map[entities.RouteKey]struct{}, len(demand)+len(supply))
	for k := range demand {
		keys[k] = struct{}{}
	}
	for k := range supply {
		keys[k] = struct{}{}
	}

	records := make([]entities.GapRecord, 0, len(keys))
	for k := range keys {
		var target, committed entities.SlotVector
		var demandBreakdown, supplyBreakdown []entities.Contribution

		if d, ok := demand[k]; ok {
			target = d.Slots
			demandBreakdown = d.Breakdown
		}
		if s, ok := supply[k]; ok {
			committed = s.Slots
			supplyBreakdown = s.Breakdown
		}
		if target == nil {
			target = make(entities.SlotVector, len(committed))
		}
		if committed == nil {
			committed = make(entities.SlotVector, len(target))
		}

		gap := entities.SubSlots(target, committed)
		targetTotal := target.Total()
		committedTotal := committed.Total()

		records = append(records, entities.GapRecord{
			RouteKey:        k,
			Target:          target,
			Committed:       committed,
			Gap:             gap,
			TargetTotal:     targetTotal,
			CommittedTotal:  committedTotal,
			GapTotal:        targetTotal - committedTotal,
			GapPercent:      roundedPercent(targetTotal-committedTotal, targetTotal),
			DemandBreakdown: demandBreakdown,
			SupplyBreakdown: supplyBreakdown,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].GapTotal != records[j].GapTotal {
			return records[i].GapTotal > records[j].GapTotal
		}
		return records[i].RouteKey < records[j].RouteKey
	})
	return records
}
