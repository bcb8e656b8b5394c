// Package export renders planning reports as CSV. Both the HTTP export
// endpoints and the CLI csv output format share these builders so the
// two surfaces never drift apart.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nmasri/laneplan/pkg/application/dto"
	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// WriteCSV writes records to w in CSV form
func WriteCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// GapRecords renders a gap report as CSV records: one row per route with
// the per-slot gap, the totals, and the gap percentage.
func GapRecords(report *dto.GapReport) [][]string {
	slotCount := report.Period.Cycle.SlotCount()
	header := []string{"Route"}
	for _, label := range exportSlotLabels(slotCount) {
		header = append(header, label+" Gap")
	}
	header = append(header, "Target Total", "Committed Total", "Gap Total", "Gap %")

	records := [][]string{header}
	for _, rec := range report.Records {
		row := []string{string(rec.RouteKey)}
		row = append(row, slotCells(rec.Gap, slotCount)...)
		row = append(row,
			quantity(rec.TargetTotal),
			quantity(rec.CommittedTotal),
			quantity(rec.GapTotal),
			fmt.Sprintf("%d%%", rec.GapPercent),
		)
		records = append(records, row)
	}
	return records
}

// DispatchRecords renders a dispatch sheet as CSV records: one row per
// supplier and route, a subtotal row per supplier, and a grand-total row.
func DispatchRecords(report *dto.DispatchReport) [][]string {
	slotCount := report.Period.Cycle.SlotCount()
	header := []string{"Supplier", "Route"}
	header = append(header, exportSlotLabels(slotCount)...)
	header = append(header, "Total")

	records := [][]string{header}
	for _, supplier := range report.Sheet.Suppliers {
		for _, route := range supplier.Routes {
			row := []string{supplier.SupplierName, string(route.RouteKey)}
			row = append(row, slotCells(route.Slots, slotCount)...)
			row = append(row, quantity(route.Total))
			records = append(records, row)
		}
		subtotal := []string{supplier.SupplierName, "TOTAL"}
		subtotal = append(subtotal, slotCells(supplier.Totals, slotCount)...)
		subtotal = append(subtotal, quantity(supplier.Total))
		records = append(records, subtotal)
	}

	grand := []string{"ALL SUPPLIERS", "TOTAL"}
	grand = append(grand, slotCells(report.Sheet.GrandTotals, slotCount)...)
	grand = append(grand, quantity(report.Sheet.GrandTotal))
	records = append(records, grand)
	return records
}

// AccuracyRecords renders an accuracy report as CSV records: one row per
// route plus a totals-based summary row.
func AccuracyRecords(report *dto.AccuracyReport) [][]string {
	records := [][]string{{
		"Route", "Forecasted", "Requested", "Fulfilled", "Variance", "Accuracy %", "Fulfillment %",
	}}
	for _, rec := range report.Records {
		records = append(records, []string{
			string(rec.RouteKey),
			quantity(rec.Forecasted),
			quantity(rec.ActualRequested),
			quantity(rec.ActualFulfilled),
			quantity(rec.Variance),
			fmt.Sprintf("%d%%", rec.AccuracyPercent),
			fmt.Sprintf("%d%%", rec.FulfillmentRate),
		})
	}
	s := report.Summary
	records = append(records, []string{
		"SUMMARY",
		quantity(s.Forecasted),
		quantity(s.ActualRequested),
		quantity(s.ActualFulfilled),
		quantity(s.Variance),
		fmt.Sprintf("%d%%", s.AccuracyPercent),
		fmt.Sprintf("%d%%", s.FulfillmentRate),
	})
	return records
}

// exportSlotLabels returns the slot-column labels exports use: the fixed
// Sunday-first day names for weekly periods, week-of-month names for
// monthly ones.
func exportSlotLabels(slotCount int) []string {
	if slotCount == 5 {
		return planning.WeekOfMonthLabels()
	}
	return planning.ExportDayLabels()
}

func slotCells(slots entities.SlotVector, slotCount int) []string {
	cells := make([]string, slotCount)
	for i := range cells {
		var q entities.Quantity
		if i < len(slots) {
			q = slots[i]
		}
		cells[i] = quantity(q)
	}
	return cells
}

func quantity(q entities.Quantity) string {
	return fmt.Sprintf("%d", q)
}
