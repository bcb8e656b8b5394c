package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// Loader handles loading planning scenario data from CSV files. A
// scenario directory holds demands.csv, supply.csv and optionally
// actuals.csv, all keyed by pickup/dropoff location codes.
type Loader struct {
	cycle entities.CycleKind
}

// NewLoader creates a CSV loader for scenarios of the given cycle kind.
// The cycle determines the expected slot columns: day1..day7 for weekly
// and daily scenarios, week1..week5 for monthly ones.
func NewLoader(cycle entities.CycleKind) *Loader {
	return &Loader{cycle: cycle}
}

// LoadDemands loads demand-forecast rows from a CSV file
func (l *Loader) LoadDemands(filename string) ([]entities.DemandRow, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("reading demands CSV: %w", err)
	}

	expectedHeader := append([]string{"pickup", "dropoff", "client_id", "client_name"}, slotColumns(l.cycle)...)
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("demands CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var rows []entities.DemandRow
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("demands CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		slots, err := parseSlots(record[4:])
		if err != nil {
			return nil, fmt.Errorf("demands CSV row %d: %w", i+2, err)
		}

		rows = append(rows, entities.DemandRow{
			RouteKey:   entities.NewRouteKey(record[0], record[1]),
			ClientID:   entities.ClientID(record[2]),
			ClientName: record[3],
			Slots:      slots,
		})
	}

	return rows, nil
}

// LoadSupply loads supply-commitment rows from a CSV file
func (l *Loader) LoadSupply(filename string) ([]entities.SupplyRow, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("reading supply CSV: %w", err)
	}

	expectedHeader := append([]string{"pickup", "dropoff", "supplier_id", "supplier_name"}, slotColumns(l.cycle)...)
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("supply CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var rows []entities.SupplyRow
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("supply CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		slots, err := parseSlots(record[4:])
		if err != nil {
			return nil, fmt.Errorf("supply CSV row %d: %w", i+2, err)
		}

		rows = append(rows, entities.SupplyRow{
			RouteKey:     entities.NewRouteKey(record[0], record[1]),
			SupplierID:   entities.SupplierID(record[2]),
			SupplierName: record[3],
			Slots:        slots,
		})
	}

	return rows, nil
}

// LoadActuals loads observed-fulfillment rows from a CSV file
func (l *Loader) LoadActuals(filename string) ([]entities.ActualRow, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("reading actuals CSV: %w", err)
	}

	expectedHeader := []string{"pickup", "dropoff", "requested", "fulfilled"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("actuals CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var rows []entities.ActualRow
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("actuals CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		requested, err := parseQuantity(record[2])
		if err != nil {
			return nil, fmt.Errorf("actuals CSV row %d: invalid requested: %w", i+2, err)
		}
		fulfilled, err := parseQuantity(record[3])
		if err != nil {
			return nil, fmt.Errorf("actuals CSV row %d: invalid fulfilled: %w", i+2, err)
		}

		rows = append(rows, entities.ActualRow{
			RouteKey:  entities.NewRouteKey(record[0], record[1]),
			Requested: requested,
			Fulfilled: fulfilled,
		})
	}

	return rows, nil
}

// Helper functions for parsing CSV records

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Column counts are validated per row with file-specific messages.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s has no header row", filename)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func slotColumns(cycle entities.CycleKind) []string {
	if cycle == entities.Monthly {
		return []string{"week1", "week2", "week3", "week4", "week5"}
	}
	return []string{"day1", "day2", "day3", "day4", "day5", "day6", "day7"}
}

func parseSlots(fields []string) (entities.SlotVector, error) {
	slots := make(entities.SlotVector, len(fields))
	for i, f := range fields {
		q, err := parseQuantity(f)
		if err != nil {
			return nil, fmt.Errorf("invalid slot %d: %w", i+1, err)
		}
		if q < 0 {
			return nil, fmt.Errorf("negative quantity %d in slot %d", q, i+1)
		}
		slots[i] = q
	}
	return slots, nil
}

func parseQuantity(s string) (entities.Quantity, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return entities.Quantity(v), nil
}
