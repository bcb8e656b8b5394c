package entities

import (
	"fmt"
	"time"
)

// TenantID identifies the organization a planning period belongs to
type TenantID string

// CycleKind represents the planning cycle granularity for a tenant
type CycleKind int

const (
	Weekly CycleKind = iota
	Monthly
	Daily
)

// String method for CycleKind enum
func (c CycleKind) String() string {
	switch c {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Daily:
		return "daily"
	default:
		return "unknown"
	}
}

// ParseCycleKind parses a cycle kind from its string form
func ParseCycleKind(s string) (CycleKind, error) {
	switch s {
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "daily":
		return Daily, nil
	default:
		return Weekly, fmt.Errorf("unknown cycle kind %q: %w", s, ErrValidation)
	}
}

// SlotCount returns the number of quantity slots a period of this cycle
// carries: seven days for weekly cycles, five weeks-of-month for monthly.
// Daily cycles are planned on weekly periods, so they carry seven slots
// as well.
func (c CycleKind) SlotCount() int {
	if c == Monthly {
		return 5
	}
	return 7
}

// MaxSequence returns the largest valid sequence number for this cycle kind
func (c CycleKind) MaxSequence() int {
	if c == Monthly {
		return 12
	}
	return 53
}

// PeriodKey uniquely identifies a planning period within a cycle kind.
// Sequence is the ISO week number for weekly and daily cycles, or the
// calendar month for monthly cycles.
type PeriodKey struct {
	TenantID TenantID
	Year     int
	Sequence int
	Cycle    CycleKind
}

// Validate checks the key's sequence range against its cycle kind
func (k PeriodKey) Validate() error {
	if k.TenantID == "" {
		return fmt.Errorf("period key missing tenant: %w", ErrValidation)
	}
	if k.Year < 2000 || k.Year > 2200 {
		return fmt.Errorf("period year %d out of range: %w", k.Year, ErrValidation)
	}
	if k.Sequence < 1 || k.Sequence > k.Cycle.MaxSequence() {
		return fmt.Errorf("period sequence %d out of range for %s cycle: %w",
			k.Sequence, k.Cycle, ErrValidation)
	}
	return nil
}

// ID renders the canonical period identifier used as the storage key,
// e.g. "acme:2026-W35" for weekly periods or "acme:2026-M08" for monthly.
func (k PeriodKey) ID() string {
	marker := "W"
	if k.Cycle == Monthly {
		marker = "M"
	}
	return fmt.Sprintf("%s:%d-%s%02d", k.TenantID, k.Year, marker, k.Sequence)
}

// Period is a tenant-scoped planning window. Start is inclusive and End
// is exclusive. Whether a period is "current" is derived from date
// containment rather than stored as a flag.
type Period struct {
	PeriodKey
	Start  time.Time
	End    time.Time
	Locked bool
}

// Contains reports whether t falls within the period window
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}
