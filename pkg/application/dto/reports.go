package dto

import (
	"time"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// GapReport is the complete output of a gap reconciliation run for one
// period, as served to the planning view and its CSV export.
type GapReport struct {
	Period      entities.Period       `json:"period"`
	Records     []entities.GapRecord  `json:"records"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// DispatchReport wraps the dispatch sheet with its period
type DispatchReport struct {
	Period      entities.Period        `json:"period"`
	Sheet       *entities.DispatchSheet `json:"sheet"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// AccuracyReport is the forecast-accuracy output for one period: the
// per-route records plus a totals-based summary.
type AccuracyReport struct {
	Period      entities.Period           `json:"period"`
	Records     []entities.AccuracyRecord `json:"records"`
	Summary     entities.AccuracySummary  `json:"summary"`
	GeneratedAt time.Time                 `json:"generated_at"`
}
