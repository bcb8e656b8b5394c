package commands

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
)

var seedRoutes = []struct {
	pickup, dropoff string
}{
	{"RUH", "JED"},
	{"JED", "DMM"},
	{"DMM", "RUH"},
	{"RUH", "DMM"},
	{"JED", "RUH"},
}

var seedClients = []struct {
	id, name string
}{
	{"c-north", "Northern Retail"},
	{"c-coast", "Coastal Foods"},
	{"c-metro", "Metro Wholesale"},
}

var seedSuppliers = []struct {
	id, name string
}{
	{"s-alpha", "Alpha Freight"},
	{"s-delta", "Delta Haulage"},
	{"s-omega", "Omega Logistics"},
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	var routes int
	var withActuals bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with a demo tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeFn, err := flags.openService(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			key, err := flags.periodKey()
			if err != nil {
				return err
			}

			if err := seed(ctx, svc, key, routes, withActuals); err != nil {
				return err
			}
			fmt.Printf("Seeded %d routes into %s\n", routes, key.ID())
			return nil
		},
	}

	cmd.Flags().IntVar(&routes, "routes", len(seedRoutes), "Number of routes to seed")
	cmd.Flags().BoolVar(&withActuals, "actuals", true, "Also seed observed-fulfillment rows")
	return cmd
}

func seed(ctx context.Context, svc *planning.Service, key entities.PeriodKey, routes int, withActuals bool) error {
	if routes > len(seedRoutes) {
		routes = len(seedRoutes)
	}
	slotCount := key.Cycle.SlotCount()

	for i := 0; i < routes; i++ {
		route := entities.NewRouteKey(seedRoutes[i].pickup, seedRoutes[i].dropoff)

		var forecasted entities.Quantity
		for _, client := range seedClients {
			slots := randomSlots(slotCount, 15)
			forecasted += slots.Total()
			err := svc.SaveDemand(ctx, key, entities.DemandRow{
				ID:         uuid.NewString(),
				RouteKey:   route,
				ClientID:   entities.ClientID(client.id),
				ClientName: client.name,
				Slots:      slots,
			})
			if err != nil {
				return fmt.Errorf("seeding demand for %s: %w", route, err)
			}
		}

		for _, supplier := range seedSuppliers {
			err := svc.SaveSupply(ctx, key, entities.SupplyRow{
				ID:           uuid.NewString(),
				RouteKey:     route,
				SupplierID:   entities.SupplierID(supplier.id),
				SupplierName: supplier.name,
				Slots:        randomSlots(slotCount, 12),
			})
			if err != nil {
				return fmt.Errorf("seeding supply for %s: %w", route, err)
			}
		}

		if withActuals {
			requested := forecasted + entities.Quantity(rand.Intn(21)-10)
			if requested < 0 {
				requested = 0
			}
			fulfilled := requested - entities.Quantity(rand.Intn(8))
			if fulfilled < 0 {
				fulfilled = 0
			}
			err := svc.SaveActuals(ctx, key, entities.ActualRow{
				RouteKey:  route,
				Requested: requested,
				Fulfilled: fulfilled,
			})
			if err != nil {
				return fmt.Errorf("seeding actuals for %s: %w", route, err)
			}
		}
	}
	return nil
}

func randomSlots(slotCount, max int) entities.SlotVector {
	slots := make(entities.SlotVector, slotCount)
	for i := range slots {
		slots[i] = entities.Quantity(rand.Intn(max + 1))
	}
	return slots
}
