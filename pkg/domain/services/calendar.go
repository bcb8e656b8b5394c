package services

import (
	"fmt"
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// Calendar resolves planning-period keys and date windows for a cycle
// kind. Daily cycles are planned on weekly periods: period generation
// branches only on Monthly versus everything else, which is the behavior
// downstream consumers depend on today.
type Calendar struct{}

// NewCalendar creates a new period calendar
func NewCalendar() *Calendar {
	return &Calendar{}
}

// KeyFor returns the period key containing the instant t for a tenant
func (c *Calendar) KeyFor(tenant entities.TenantID, cycle entities.CycleKind, t time.Time) entities.PeriodKey {
	if cycle == entities.Monthly {
		return entities.PeriodKey{
			TenantID: tenant,
			Year:     t.Year(),
			Sequence: int(t.Month()),
			Cycle:    cycle,
		}
	}
	year, week := t.ISOWeek()
	return entities.PeriodKey{
		TenantID: tenant,
		Year:     year,
		Sequence: week,
		Cycle:    cycle,
	}
}

// Bounds returns the [start, end) window for a period key. Weekly and
// daily periods span an ISO week starting on Monday; monthly periods span
// a calendar month.
func (c *Calendar) Bounds(key entities.PeriodKey) (time.Time, time.Time, error) {
	if err := key.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if key.Cycle == entities.Monthly {
		start := time.Date(key.Year, time.Month(key.Sequence), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), nil
	}

	start, err := isoWeekStart(key.Year, key.Sequence)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 7), nil
}

// NewPeriod builds an unlocked period for the given key
func (c *Calendar) NewPeriod(key entities.PeriodKey) (entities.Period, error) {
	start, end, err := c.Bounds(key)
	if err != nil {
		return entities.Period{}, err
	}
	return entities.Period{PeriodKey: key, Start: start, End: end}, nil
}

// isoWeekStart returns the Monday beginning the given ISO week
func isoWeekStart(year, week int) (time.Time, error) {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	start := week1Monday.AddDate(0, 0, (week-1)*7)

	// Sequences like week 53 exist only in long ISO years.
	if y, w := start.ISOWeek(); y != year || w != week {
		return time.Time{}, fmt.Errorf("year %d has no ISO week %d: %w", year, week, entities.ErrValidation)
	}
	return start, nil
}
