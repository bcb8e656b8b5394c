package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey_ID(t *testing.T) {
	weekly := PeriodKey{TenantID: "acme", Year: 2026, Sequence: 35, Cycle: Weekly}
	assert.Equal(t, "acme:2026-W35", weekly.ID())

	monthly := PeriodKey{TenantID: "acme", Year: 2026, Sequence: 8, Cycle: Monthly}
	assert.Equal(t, "acme:2026-M08", monthly.ID())

	// Daily cycles share the weekly marker.
	daily := PeriodKey{TenantID: "acme", Year: 2026, Sequence: 35, Cycle: Daily}
	assert.Equal(t, "acme:2026-W35", daily.ID())
}

func TestPeriodKey_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     PeriodKey
		wantErr bool
	}{
		{"valid weekly", PeriodKey{"acme", 2026, 53, Weekly}, false},
		{"valid monthly", PeriodKey{"acme", 2026, 12, Monthly}, false},
		{"missing tenant", PeriodKey{"", 2026, 1, Weekly}, true},
		{"week zero", PeriodKey{"acme", 2026, 0, Weekly}, true},
		{"week 54", PeriodKey{"acme", 2026, 54, Weekly}, true},
		{"month 13", PeriodKey{"acme", 2026, 13, Monthly}, true},
		{"daily allows week range", PeriodKey{"acme", 2026, 53, Daily}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPeriod_Contains(t *testing.T) {
	p := Period{
		Start: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(p.End))
	assert.False(t, p.Contains(p.Start.Add(-time.Second)))
}

func TestParseCycleKind(t *testing.T) {
	for _, c := range []CycleKind{Weekly, Monthly, Daily} {
		parsed, err := ParseCycleKind(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCycleKind("fortnightly")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewRouteKey(t *testing.T) {
	assert.Equal(t, RouteKey("RUHJED"), NewRouteKey("RUH", "JED"))
	assert.Equal(t, RouteKey("RUHJED"), NewRouteKey(" ruh ", "jed"))
}
