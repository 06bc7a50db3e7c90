// Package finmath is a library of small, side-effect-free financial and
// statistical formulas consumed by the reporting pages. Every function maps
// explicit inputs to an output value; division-by-zero edge cases return
// documented fallbacks (0, +Inf, a neutral trend) rather than NaN, since the
// presentation layer renders whatever comes back.
package finmath

import "math"

// Trend classifies the direction of a period-over-period change.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// ChangeResult is a percentage change plus its direction.
type ChangeResult struct {
	Change float64 `json:"change"`
	Trend  Trend   `json:"trend"`
}

// PercentageChange computes the percentage change from previous to current.
// When previous is 0 the change is 100 for any positive current value and 0
// otherwise. Changes within ±0.1% classify as neutral so floating-point
// noise doesn't flag a trend.
func PercentageChange(current, previous float64) ChangeResult {
	if previous == 0 {
		if current > 0 {
			return ChangeResult{Change: 100, Trend: TrendUp}
		}
		return ChangeResult{Change: 0, Trend: TrendNeutral}
	}
	change := (current - previous) / math.Abs(previous) * 100
	trend := TrendNeutral
	if change > 0.1 {
		trend = TrendUp
	} else if change < -0.1 {
		trend = TrendDown
	}
	return ChangeResult{Change: change, Trend: trend}
}

// DaysOfCashRemaining estimates how many days the cash balance lasts at the
// given monthly burn rate. A non-positive burn rate means cash never runs
// out, so the result is +Inf; otherwise the result is a whole number of
// days.
func DaysOfCashRemaining(cashBalance, monthlyBurnRate float64) float64 {
	if monthlyBurnRate <= 0 {
		return math.Inf(1)
	}
	return math.Floor(cashBalance / monthlyBurnRate * 30)
}

// BreakEvenPoint is the unit count and revenue at which fixed costs are
// covered. Both fields are +Inf when there is no positive contribution
// margin.
type BreakEvenPoint struct {
	Units   float64 `json:"units"`
	Revenue float64 `json:"revenue"`
}

// BreakEven computes the break-even point. When pricePerUnit does not exceed
// variableCostPerUnit no unit count can cover fixed costs, and both fields
// are +Inf rather than negative or undefined.
func BreakEven(fixedCosts, variableCostPerUnit, pricePerUnit float64) BreakEvenPoint {
	margin := pricePerUnit - variableCostPerUnit
	if margin <= 0 {
		return BreakEvenPoint{Units: math.Inf(1), Revenue: math.Inf(1)}
	}
	units := math.Ceil(fixedCosts / margin)
	return BreakEvenPoint{Units: units, Revenue: units * pricePerUnit}
}

// ProfitMargin returns the profit margin as a 0-100 percentage. Zero revenue
// returns 0, not NaN.
func ProfitMargin(revenue, costs float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - costs) / revenue * 100
}
