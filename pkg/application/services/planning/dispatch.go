package planning

import (
	"fmt"
	"sort"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// AggregateBySupplier regroups the same supply rows supplier-first for
// the dispatch sheet: each supplier's commitments are summed per route.
// The same empty-route-key contract as route aggregation applies.
func AggregateBySupplier(periodID string, rows []entities.SupplyRow) (map[entities.SupplierID]*entities.SupplierDispatchRow, error) {
	suppliers := make(map[entities.SupplierID]*entities.SupplierDispatchRow)
	routeIndex := make(map[entities.SupplierID]map[entities.RouteKey]int)

	for i, row := range rows {
		if row.RouteKey == "" {
			return nil, fmt.Errorf("row %d has empty route key: %w", i+1, entities.ErrValidation)
		}

		s, ok := suppliers[row.SupplierID]
		if !ok {
			s = &entities.SupplierDispatchRow{
				SupplierID:   row.SupplierID,
				SupplierName: row.SupplierName,
			}
			suppliers[row.SupplierID] = s
			routeIndex[row.SupplierID] = make(map[entities.RouteKey]int)
		}

		idx, ok := routeIndex[row.SupplierID][row.RouteKey]
		if !ok {
			idx = len(s.Routes)
			s.Routes = append(s.Routes, entities.DispatchRouteLine{RouteKey: row.RouteKey})
			routeIndex[row.SupplierID][row.RouteKey] = idx
		}

		line := &s.Routes[idx]
		line.Slots = entities.AddSlots(line.Slots, row.Slots)
		line.Total = line.Slots.Total()
	}

	return suppliers, nil
}

// ProjectDispatch shapes supplier-grouped supply into the dispatch sheet:
// routes ordered by route key within each supplier, suppliers ordered by
// name, and totals summed at the supplier and sheet level.
func ProjectDispatch(periodID string, bySupplier map[entities.SupplierID]*entities.SupplierDispatchRow) *entities.DispatchSheet {
	sheet := &entities.DispatchSheet{
		PeriodID:  periodID,
		Suppliers: make([]entities.SupplierDispatchRow, 0, len(bySupplier)),
	}

	for _, s := range bySupplier {
		row := *s
		row.Routes = append([]entities.DispatchRouteLine(nil), s.Routes...)
		sort.Slice(row.Routes, func(i, j int) bool {
			return row.Routes[i].RouteKey < row.Routes[j].RouteKey
		})

		row.Totals = nil
		for _, line := range row.Routes {
			row.Totals = entities.AddSlots(row.Totals, line.Slots)
		}
		row.Total = row.Totals.Total()

		sheet.Suppliers = append(sheet.Suppliers, row)
	}

	sort.Slice(sheet.Suppliers, func(i, j int) bool {
		if sheet.Suppliers[i].SupplierName != sheet.Suppliers[j].SupplierName {
			return sheet.Suppliers[i].SupplierName < sheet.Suppliers[j].SupplierName
		}
		return sheet.Suppliers[i].SupplierID < sheet.Suppliers[j].SupplierID
	})

	for _, s := range sheet.Suppliers {
		sheet.GrandTotals = entities.AddSlots(sheet.GrandTotals, s.Totals)
	}
	sheet.GrandTotal = sheet.GrandTotals.Total()
	return sheet
}
