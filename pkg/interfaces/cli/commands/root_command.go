// Package commands implements the laneplan CLI. Report commands run
// against a SQLite database or directly against CSV scenario files; the
// serve command hosts the HTTP API over PostgreSQL or SQLite.
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/domain/services"
	"github.com/nmasri/laneplan/pkg/infrastructure/db"
	csvrepo "github.com/nmasri/laneplan/pkg/infrastructure/repositories/csv"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/memory"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/sqlite"
)

// rootFlags are the persistent flags shared by every report command.
type rootFlags struct {
	dbPath  string
	tenant  string
	cycle   string
	year    int
	seq     int
	format  string
	demand  string
	supply  string
	actuals string
}

// NewRootCmd builds the laneplan command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "laneplan",
		Short: "Freight demand and supply planning",
		Long: `laneplan reconciles client demand forecasts against supplier
commitments per route and period, projects supplier dispatch sheets, and
scores forecast accuracy against observed fulfillment.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (default $LANEPLAN_DB or ~/.laneplan/laneplan.db)")
	cmd.PersistentFlags().StringVar(&flags.tenant, "tenant", "", "Tenant identifier")
	cmd.PersistentFlags().StringVar(&flags.cycle, "cycle", "weekly", "Planning cycle: weekly, monthly or daily")
	cmd.PersistentFlags().IntVar(&flags.year, "year", 0, "Period year (defaults to the current period)")
	cmd.PersistentFlags().IntVar(&flags.seq, "seq", 0, "Period sequence: ISO week or month number")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "text", "Output format: text, json or csv")

	cmd.AddCommand(
		newPlanCmd(flags),
		newDispatchCmd(flags),
		newAccuracyCmd(flags),
		newServeCmd(),
		newSeedCmd(flags),
	)

	return cmd
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openService builds a planning service. When any scenario CSV flag is
// set the service runs over in-memory repositories seeded from the
// files; otherwise it opens the SQLite database.
func (f *rootFlags) openService(ctx context.Context) (*planning.Service, func(), error) {
	cycle, err := entities.ParseCycleKind(f.cycle)
	if err != nil {
		return nil, nil, err
	}

	if f.demand != "" || f.supply != "" || f.actuals != "" {
		svc, err := f.scenarioService(ctx, cycle)
		if err != nil {
			return nil, nil, err
		}
		return svc, func() {}, nil
	}

	path := f.dbPath
	if path == "" {
		path = os.Getenv("LANEPLAN_DB")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".laneplan", "laneplan.db")
	}

	database, err := db.OpenDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	svc := planning.NewService(
		sqlite.NewPeriodRepository(database),
		sqlite.NewDemandRepository(database),
		sqlite.NewSupplyRepository(database),
		sqlite.NewActualsRepository(database),
	)
	return svc, func() { database.Close() }, nil
}

// scenarioService seeds in-memory repositories from the CSV scenario
// files given on the command line.
func (f *rootFlags) scenarioService(ctx context.Context, cycle entities.CycleKind) (*planning.Service, error) {
	svc := planning.NewService(
		memory.NewPeriodRepository(),
		memory.NewDemandRepository(),
		memory.NewSupplyRepository(),
		memory.NewActualsRepository(),
	)
	key, err := f.periodKey()
	if err != nil {
		return nil, err
	}
	loader := csvrepo.NewLoader(cycle)

	if f.demand != "" {
		rows, err := loader.LoadDemands(f.demand)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := svc.SaveDemand(ctx, key, row); err != nil {
				return nil, err
			}
		}
	}
	if f.supply != "" {
		rows, err := loader.LoadSupply(f.supply)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := svc.SaveSupply(ctx, key, row); err != nil {
				return nil, err
			}
		}
	}
	if f.actuals != "" {
		rows, err := loader.LoadActuals(f.actuals)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := svc.SaveActuals(ctx, key, row); err != nil {
				return nil, err
			}
		}
	}
	return svc, nil
}

// periodKey resolves the period key from the tenant/cycle/year/seq flags.
// Year and seq default to the period containing the current instant.
func (f *rootFlags) periodKey() (entities.PeriodKey, error) {
	if f.tenant == "" {
		return entities.PeriodKey{}, fmt.Errorf("missing --tenant: %w", entities.ErrValidation)
	}
	cycle, err := entities.ParseCycleKind(f.cycle)
	if err != nil {
		return entities.PeriodKey{}, err
	}

	if f.year == 0 && f.seq == 0 {
		return services.NewCalendar().KeyFor(entities.TenantID(f.tenant), cycle, time.Now()), nil
	}

	key := entities.PeriodKey{
		TenantID: entities.TenantID(f.tenant),
		Year:     f.year,
		Sequence: f.seq,
		Cycle:    cycle,
	}
	if err := key.Validate(); err != nil {
		return entities.PeriodKey{}, err
	}
	return key, nil
}
