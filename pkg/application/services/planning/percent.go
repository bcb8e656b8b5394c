package planning

import (
	"github.com/shopspring/decimal"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// roundedPercent returns round(num/den*100) as an integer, or 0 when the
// denominator is zero. Percent math against a zero base is a policy
// default, never a division error.
func roundedPercent(num, den entities.Quantity) int {
	if den == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(num)).
		Div(decimal.NewFromInt(int64(den))).
		Mul(hundred).
		Round(0)
	return int(pct.IntPart())
}

// accuracyPercent returns max(0, round((1 - |variance|/forecasted) * 100)).
// A zero forecast with zero requested actuals counts as perfectly
// accurate; a zero forecast with nonzero actuals counts as fully
// inaccurate.
func accuracyPercent(forecasted, requested entities.Quantity) int {
	if forecasted <= 0 {
		if requested == 0 {
			return 100
		}
		return 0
	}

	variance := requested - forecasted
	if variance < 0 {
		variance = -variance
	}

	pct := decimal.NewFromInt(1).
		Sub(decimal.NewFromInt(int64(variance)).Div(decimal.NewFromInt(int64(forecasted)))).
		Mul(hundred).
		Round(0)
	if pct.IsNegative() {
		return 0
	}
	return int(pct.IntPart())
}
