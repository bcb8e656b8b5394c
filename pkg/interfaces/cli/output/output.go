package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nmasri/laneplan/pkg/application/dto"
	"github.com/nmasri/laneplan/pkg/interfaces/export"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	Out    io.Writer
}

// RenderGap writes a gap report in the configured format
func RenderGap(report *dto.GapReport, config Config) error {
	switch config.Format {
	case "text":
		return gapText(report, config.Out)
	case "json":
		return jsonOutput(report, config.Out)
	case "csv":
		return export.WriteCSV(config.Out, export.GapRecords(report))
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderDispatch writes a dispatch report in the configured format
func RenderDispatch(report *dto.DispatchReport, config Config) error {
	switch config.Format {
	case "text":
		return dispatchText(report, config.Out)
	case "json":
		return jsonOutput(report, config.Out)
	case "csv":
		return export.WriteCSV(config.Out, export.DispatchRecords(report))
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderAccuracy writes an accuracy report in the configured format
func RenderAccuracy(report *dto.AccuracyReport, config Config) error {
	switch config.Format {
	case "text":
		return accuracyText(report, config.Out)
	case "json":
		return jsonOutput(report, config.Out)
	case "csv":
		return export.WriteCSV(config.Out, export.AccuracyRecords(report))
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func jsonOutput(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func gapText(report *dto.GapReport, w io.Writer) error {
	fmt.Fprintf(w, "📊 Gap Report: %s\n", report.Period.ID())
	fmt.Fprintf(w, "======================\n\n")

	fmt.Fprintf(w, "Routes: %d\n\n", len(report.Records))

	if len(report.Records) > 0 {
		fmt.Fprintf(w, "%-12s %-10s %-10s %-8s %-6s\n",
			"Route", "Target", "Committed", "Gap", "Gap %")
		fmt.Fprintf(w, "%-12s %-10s %-10s %-8s %-6s\n",
			"------------", "----------", "----------", "--------", "------")

		for _, rec := range report.Records {
			fmt.Fprintf(w, "%-12s %-10d %-10d %-8d %d%%\n",
				rec.RouteKey,
				rec.TargetTotal,
				rec.CommittedTotal,
				rec.GapTotal,
				rec.GapPercent)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func dispatchText(report *dto.DispatchReport, w io.Writer) error {
	fmt.Fprintf(w, "🚚 Dispatch Sheet: %s\n", report.Period.ID())
	fmt.Fprintf(w, "======================\n\n")

	for _, supplier := range report.Sheet.Suppliers {
		fmt.Fprintf(w, "%s (%s): %d slots\n", supplier.SupplierName, supplier.SupplierID, supplier.Total)
		for _, route := range supplier.Routes {
			fmt.Fprintf(w, "  %-12s %d\n", route.RouteKey, route.Total)
		}
	}
	fmt.Fprintf(w, "\nGrand total: %d\n", report.Sheet.GrandTotal)
	return nil
}

func accuracyText(report *dto.AccuracyReport, w io.Writer) error {
	fmt.Fprintf(w, "🎯 Forecast Accuracy: %s\n", report.Period.ID())
	fmt.Fprintf(w, "======================\n\n")

	if len(report.Records) > 0 {
		fmt.Fprintf(w, "%-12s %-11s %-10s %-10s %-9s %-10s %-12s\n",
			"Route", "Forecasted", "Requested", "Fulfilled", "Variance", "Accuracy", "Fulfillment")
		fmt.Fprintf(w, "%-12s %-11s %-10s %-10s %-9s %-10s %-12s\n",
			"------------", "-----------", "----------", "----------", "---------", "----------", "------------")

		for _, rec := range report.Records {
			fmt.Fprintf(w, "%-12s %-11d %-10d %-10d %-9d %-10s %-12s\n",
				rec.RouteKey,
				rec.Forecasted,
				rec.ActualRequested,
				rec.ActualFulfilled,
				rec.Variance,
				fmt.Sprintf("%d%%", rec.AccuracyPercent),
				fmt.Sprintf("%d%%", rec.FulfillmentRate))
		}
		fmt.Fprintln(w)
	}

	s := report.Summary
	fmt.Fprintf(w, "Summary: %d routes, accuracy %d%%, fulfillment %d%%\n",
		s.RouteCount, s.AccuracyPercent, s.FulfillmentRate)
	return nil
}
