package main

import (
	"context"
	"fmt"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	svc := planning.NewService(
		memory.NewPeriodRepository(),
		memory.NewDemandRepository(),
		memory.NewSupplyRepository(),
		memory.NewActualsRepository(),
	)

	// ISO week 35 of 2026 for the demo tenant.
	key := entities.PeriodKey{TenantID: "acme", Year: 2026, Sequence: 35, Cycle: entities.Weekly}

	fmt.Println("🚚 Planning week 35 for acme...")
	setupScenario(ctx, svc, key)

	report, err := svc.GapReport(ctx, key)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nGap report for %s (%d routes):\n", key.ID(), len(report.Records))
	for _, rec := range report.Records {
		fmt.Printf("  %-8s target=%-4d committed=%-4d gap=%-4d (%d%%)\n",
			rec.RouteKey, rec.TargetTotal, rec.CommittedTotal, rec.GapTotal, rec.GapPercent)
	}

	accuracy, err := svc.AccuracyReport(ctx, key)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nForecast accuracy: %d%% across %d routes, fulfillment %d%%\n",
		accuracy.Summary.AccuracyPercent,
		accuracy.Summary.RouteCount,
		accuracy.Summary.FulfillmentRate)
}

func setupScenario(ctx context.Context, svc *planning.Service, key entities.PeriodKey) {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	// Two clients forecast the Riyadh-Jeddah lane; one supplier commits.
	must(svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey:   entities.NewRouteKey("RUH", "JED"),
		ClientID:   "c-north",
		ClientName: "Northern Retail",
		Slots:      entities.SlotVector{10, 10, 10, 10, 10, 10, 10},
	}))
	must(svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey:   entities.NewRouteKey("RUH", "JED"),
		ClientID:   "c-coast",
		ClientName: "Coastal Foods",
		Slots:      entities.SlotVector{5, 0, 5, 0, 5, 0, 5},
	}))
	must(svc.SaveSupply(ctx, key, entities.SupplyRow{
		RouteKey:     entities.NewRouteKey("RUH", "JED"),
		SupplierID:   "s-alpha",
		SupplierName: "Alpha Freight",
		Slots:        entities.SlotVector{12, 12, 12, 12, 12, 12, 12},
	}))

	// A lane with demand and no committed supply at all.
	must(svc.SaveDemand(ctx, key, entities.DemandRow{
		RouteKey:   entities.NewRouteKey("JED", "DMM"),
		ClientID:   "c-metro",
		ClientName: "Metro Wholesale",
		Slots:      entities.SlotVector{8, 8, 8, 8, 8, 8, 8},
	}))

	// Observed fulfillment for the first lane.
	must(svc.SaveActuals(ctx, key, entities.ActualRow{
		RouteKey:  entities.NewRouteKey("RUH", "JED"),
		Requested: 98,
		Fulfilled: 90,
	}))
}
