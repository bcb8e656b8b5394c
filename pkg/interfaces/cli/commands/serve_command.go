package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
	"github.com/nmasri/laneplan/pkg/infrastructure/db"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/postgres"
	"github.com/nmasri/laneplan/pkg/infrastructure/repositories/sqlite"
	"github.com/nmasri/laneplan/pkg/interfaces/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the planning HTTP API",
		Long: `Starts the HTTP API. Connects to PostgreSQL when DATABASE_URL is
set (loaded from the environment or a .env file), otherwise falls back
to a local SQLite database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing .env is fine; the environment may carry everything.
			_ = godotenv.Load()

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			svc, closeFn, err := openServeService(dbPath, log)
			if err != nil {
				return err
			}
			defer closeFn()

			if addr == "" {
				addr = os.Getenv("LANEPLAN_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			server := httpapi.NewServer(svc, log)
			log.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $LANEPLAN_ADDR or :8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path used when DATABASE_URL is unset")
	return cmd
}

func openServeService(dbPath string, log *slog.Logger) (*planning.Service, func(), error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		pg, err := db.OpenPostgres(connStr)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		log.Info("storage", "backend", "postgres")
		svc := planning.NewService(
			postgres.NewPeriodRepository(pg),
			postgres.NewDemandRepository(pg),
			postgres.NewSupplyRepository(pg),
			postgres.NewActualsRepository(pg),
		)
		return svc, func() { pg.Close() }, nil
	}

	if dbPath == "" {
		dbPath = os.Getenv("LANEPLAN_DB")
	}
	if dbPath == "" {
		dbPath = "laneplan.db"
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	log.Info("storage", "backend", "sqlite", "path", dbPath)
	svc := planning.NewService(
		sqlite.NewPeriodRepository(database),
		sqlite.NewDemandRepository(database),
		sqlite.NewSupplyRepository(database),
		sqlite.NewActualsRepository(database),
	)
	return svc, func() { database.Close() }, nil
}
