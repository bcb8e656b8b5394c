package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// re-running the full list against an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS periods (
		id       TEXT PRIMARY KEY,
		tenant   TEXT NOT NULL,
		year     INTEGER NOT NULL,
		sequence INTEGER NOT NULL,
		cycle    TEXT NOT NULL
		         CHECK(cycle IN ('weekly','monthly','daily')),
		start_at TEXT NOT NULL,
		end_at   TEXT NOT NULL,
		locked   INTEGER NOT NULL DEFAULT 0
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
		d1          INTEGER NOT NULL DEFAULT 0,
		d2          INTEGER NOT NULL DEFAULT 0,
		d3          INTEGER NOT NULL DEFAULT 0,
		d4          INTEGER NOT NULL DEFAULT 0,
		d5          INTEGER NOT NULL DEFAULT 0,
		d6          INTEGER NOT NULL DEFAULT 0,
		d7          INTEGER NOT NULL DEFAULT 0,
		total       INTEGER NOT NULL DEFAULT 0
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
		d1            INTEGER NOT NULL DEFAULT 0,
		d2            INTEGER NOT NULL DEFAULT 0,
		d3            INTEGER NOT NULL DEFAULT 0,
		d4            INTEGER NOT NULL DEFAULT 0,
		d5            INTEGER NOT NULL DEFAULT 0,
		d6            INTEGER NOT NULL DEFAULT 0,
		d7            INTEGER NOT NULL DEFAULT 0,
		total         INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_supply_rows_period
		ON supply_rows(tenant, period_id)`,

	`CREATE TABLE IF NOT EXISTS actual_rows (
		tenant    TEXT NOT NULL,
		period_id TEXT NOT NULL REFERENCES periods(id) ON DELETE CASCADE,
		route_key TEXT NOT NULL,
		requested INTEGER NOT NULL DEFAULT 0,
		fulfilled INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (tenant, period_id, route_key)
	)`,
}
