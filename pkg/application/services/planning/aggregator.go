package planning

import (
	"fmt"
	"sort"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// aggregate folds rows into per-route totals. It is the single grouping
// implementation behind both the demand and supply aggregators: the key
// and contributor extractors are the only thing that differs between the
// two sides. Rows with an empty route key violate the caller contract and
// fail the whole aggregation instead of being silently dropped or merged.
func aggregate[R any](
	periodID string,
	rows []R,
	key func(R) entities.RouteKey,
	contributor func(R) entities.Contribution,
) (map[entities.RouteKey]*entities.AggregatedRoute, error) {
	routes := make(map[entities.RouteKey]*entities.AggregatedRoute)

	for i, row := range rows {
		k := key(row)
		if k == "" {
			return nil, fmt.Errorf("row %d has empty route key: %w", i+1, entities.ErrValidation)
		}

		agg, ok := routes[k]
		if !ok {
			agg = &entities.AggregatedRoute{
				RouteKey: k,
				PeriodID: periodID,
			}
			routes[k] = agg
		}

		c := contributor(row)
		c.Slots = c.Slots.Clone()
		c.Total = c.Slots.Total()

		agg.Slots = entities.AddSlots(agg.Slots, c.Slots)
		agg.ContributorCount++
		agg.Breakdown = append(agg.Breakdown, c)
	}

	for _, agg := range routes {
		sortContributions(agg.Breakdown)
	}
	return routes, nil
}

// AggregateDemand groups demand rows by route within a period, summing
// slot vectors and retaining the per-client breakdown. The stored total
// on each row is ignored; totals are recomputed from the slots.
func AggregateDemand(periodID string, rows []entities.DemandRow) (map[entities.RouteKey]*entities.AggregatedRoute, error) {
	return aggregate(periodID, rows,
		func(r entities.DemandRow) entities.RouteKey { return r.RouteKey },
		func(r entities.DemandRow) entities.Contribution {
			return entities.Contribution{
				ContributorID:   string(r.ClientID),
				ContributorName: r.ClientName,
				Slots:           r.Slots,
			}
		})
}

// AggregateSupply groups supply rows by route within a period, summing
// slot vectors and retaining the per-supplier breakdown.
func AggregateSupply(periodID string, rows []entities.SupplyRow) (map[entities.RouteKey]*entities.AggregatedRoute, error) {
	return aggregate(periodID, rows,
		func(r entities.SupplyRow) entities.RouteKey { return r.RouteKey },
		func(r entities.SupplyRow) entities.Contribution {
			return entities.Contribution{
				ContributorID:   string(r.SupplierID),
				ContributorName: r.SupplierName,
				Slots:           r.Slots,
			}
		})
}

// sortContributions orders a breakdown by contributor name ascending,
// with IDs breaking ties so the order is deterministic.
func sortContributions(cs []entities.Contribution) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].ContributorName != cs[j].ContributorName {
			return cs[i].ContributorName < cs[j].ContributorName
		}
		return cs[i].ContributorID < cs[j].ContributorID
	})
}
