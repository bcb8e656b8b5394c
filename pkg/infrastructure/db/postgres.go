package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// OpenPostgres opens a PostgreSQL connection pool for server deployments
// and runs migrations. connStr is a lib/pq connection string or URL.
func OpenPostgres(connStr string) (*sql.DB, error) {
	pg, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	pg.SetMaxOpenConns(25)
	pg.SetMaxIdleConns(5)
	pg.SetConnMaxLifetime(5 * time.Minute)

	if err := pg.Ping(); err != nil {
		pg.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if err := MigratePostgres(pg); err != nil {
		pg.Close()
		return nil, fmt.Errorf("running postgres migrations: %w", err)
	}

	return pg, nil
}

// MigratePostgres runs the PostgreSQL schema migrations. Statements are
// idempotent and safe to re-run.
func MigratePostgres(pg *sql.DB) error {
	for i, stmt := range postgresMigrations {
		if _, err := pg.Exec(stmt); err != nil {
			return fmt.Errorf("postgres migration %d: %w", i, err)
		}
	}
	return nil
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS periods (
		id       TEXT PRIMARY KEY,
		tenant   TEXT NOT NULL,
		year     INTEGER NOT NULL,
		sequence INTEGER NOT NULL,
		cycle    TEXT NOT NULL
		         CHECK(cycle IN ('weekly','monthly','daily')),
		start_at TIMESTAMPTZ NOT NULL,
		end_at   TIMESTAMPTZ NOT NULL,
		locked   BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_periods_key
		ON periods(tenant, year, sequence, cycle)`,

	`CREATE TABLE IF NOT EXISTS demand_rows (
		id          TEXT PRIMARY KEY,
		tenant      TEXT NOT NULL,
		period_id   TEXT NOT NULL REFERENCES periods(id) ON DELETE CASCADE,
		route_key   TEXT NOT NULL,
		client_id   TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		slot_count  INTEGER NOT NULL,
		d1          BIGINT NOT NULL DEFAULT 0,
		d2          BIGINT NOT NULL DEFAULT 0,
		d3          BIGINT NOT NULL DEFAULT 0,
		d4          BIGINT NOT NULL DEFAULT 0,
		d5          BIGINT NOT NULL DEFAULT 0,
		d6          BIGINT NOT NULL DEFAULT 0,
		d7          BIGINT NOT NULL DEFAULT 0,
		total       BIGINT NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_demand_rows_period
		ON demand_rows(tenant, period_id)`,

	`CREATE TABLE IF NOT EXISTS supply_rows (
		id            TEXT PRIMARY KEY,
		tenant        TEXT NOT NULL,
		period_id     TEXT NOT NULL REFERENCES periods(id) ON DELETE CASCADE,
		route_key     TEXT NOT NULL,
		supplier_id   TEXT NOT NULL,
		supplier_name TEXT NOT NULL DEFAULT '',
		slot_count    INTEGER NOT NULL,
		d1            BIGINT NOT NULL DEFAULT 0,
		d2            BIGINT NOT NULL DEFAULT 0,
		d3            BIGINT NOT NULL DEFAULT 0,
		d4            BIGINT NOT NULL DEFAULT 0,
		d5            BIGINT NOT NULL DEFAULT 0,
		d6            BIGINT NOT NULL DEFAULT 0,
		d7            BIGINT NOT NULL DEFAULT 0,
		total         BIGINT NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_supply_rows_period
		ON supply_rows(tenant, period_id)`,

	`CREATE TABLE IF NOT EXISTS actual_rows (
		tenant    TEXT NOT NULL,
		period_id TEXT NOT NULL REFERENCES periods(id) ON DELETE CASCADE,
		route_key TEXT NOT NULL,
		requested BIGINT NOT NULL DEFAULT 0,
		fulfilled BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (tenant, period_id, route_key)
	)`,
}
