package planning

import (
	"sort"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// ReconcileAccuracy joins aggregated demand against observed actuals on
// route key, full outer the same way gap reconciliation is: a forecasted
// route with no actuals and an observed route that was never forecasted
// both produce records, with the missing side's counts defaulting to
// zero.
//
// The summary applies the accuracy formula to the summed totals rather
// than averaging the per-route percentages; the two differ whenever
// route volumes differ, and the totals form is the correct one.
func ReconcileAccuracy(
	demand map[entities.RouteKey]*entities.AggregatedRoute,
	actuals map[entities.RouteKey]entities.ActualRow,
) ([]entities.AccuracyRecord, entities.AccuracySummary) {
	keys := make(map[entities.RouteKey]struct{}, len(demand)+len(actuals))
	for k := range demand {
		keys[k] = struct{}{}
	}
	for k := range actuals {
		keys[k] = struct{}{}
	}

	records := make([]entities.AccuracyRecord, 0, len(keys))
	var summary entities.AccuracySummary

	for k := range keys {
		var forecasted, requested, fulfilled entities.Quantity
		if d, ok := demand[k]; ok {
			forecasted = d.Slots.Total()
		}
		if a, ok := actuals[k]; ok {
			requested = a.Requested
			fulfilled = a.Fulfilled
		}

		records = append(records, entities.AccuracyRecord{
			RouteKey:        k,
			Forecasted:      forecasted,
			ActualRequested: requested,
			ActualFulfilled: fulfilled,
			Variance:        requested - forecasted,
			AccuracyPercent: accuracyPercent(forecasted, requested),
			FulfillmentRate: roundedPercent(fulfilled, requested),
		})

		summary.Forecasted += forecasted
		summary.ActualRequested += requested
		summary.ActualFulfilled += fulfilled
	}

	sort.Slice(records, func(i, j int) bool {
		vi, vj := abs(records[i].Variance), abs(records[j].Variance)
		if vi != vj {
			return vi > vj
		}
		return records[i].RouteKey < records[j].RouteKey
	})

	summary.RouteCount = len(records)
	summary.Variance = summary.ActualRequested - summary.Forecasted
	summary.AccuracyPercent = accuracyPercent(summary.Forecasted, summary.ActualRequested)
	summary.FulfillmentRate = roundedPercent(summary.ActualFulfilled, summary.ActualRequested)
	return records, summary
}

// ActualsByRoute indexes actual rows by route key for reconciliation.
// Rows for the same route are summed.
func ActualsByRoute(rows []entities.ActualRow) map[entities.RouteKey]entities.ActualRow {
	out := make(map[entities.RouteKey]entities.ActualRow, len(rows))
	for _, row := range rows {
		agg := out[row.RouteKey]
		agg.RouteKey = row.RouteKey
		agg.PeriodID = row.PeriodID
		agg.Requested += row.Requested
		agg.Fulfilled += row.Fulfilled
		out[row.RouteKey] = agg
	}
	return out
}

func abs(q entities.Quantity) entities.Quantity {
	if q < 0 {
		return -q
	}
	return q
}
