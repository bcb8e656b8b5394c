package planning

import "time"

// DayLabels returns the seven day-column labels for a tenant whose week
// starts on weekStart, in slot order: slot 1 is the week-start day.
func DayLabels(weekStart time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = time.Weekday((int(weekStart) + i) % 7).String()
	}
	return labels
}

// ExportDayLabels returns the fixed Sunday-first labels used by CSV
// exports. Exports have always emitted Sunday..Saturday regardless of the
// tenant's configured week start, even though slot positions are relative
// to that start day. Callers that want labels matching the tenant
// configuration should use DayLabels instead.
//
// TODO: confirm with product whether exports should honor the tenant
// week-start day before changing this.
func ExportDayLabels() []string {
	return DayLabels(time.Sunday)
}

// WeekOfMonthLabels returns the five week-column labels for monthly
// periods.
func WeekOfMonthLabels() []string {
	return []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}
}

// SlotLabels returns the slot-column labels for a vector of the given
// length: day names for seven slots, week-of-month names for five.
func SlotLabels(slotCount int, weekStart time.Weekday) []string {
	if slotCount == 5 {
		return WeekOfMonthLabels()
	}
	return DayLabels(weekStart)
}
