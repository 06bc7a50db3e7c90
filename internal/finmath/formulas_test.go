package finmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		previous   float64
		wantChange float64
		wantTrend  Trend
	}{
		{"zero previous positive current", 50, 0, 100, TrendUp},
		{"zero previous zero current", 0, 0, 0, TrendNeutral},
		{"increase", 150, 100, 50, TrendUp},
		{"decrease", 50, 100, -50, TrendDown},
		{"negative previous uses absolute", 90, -100, 190, TrendUp},
		{"within dead-band up", 100.05, 100, 0.05, TrendNeutral},
		{"within dead-band down", 99.95, 100, -0.05, TrendNeutral},
		{"just outside dead-band", 100.2, 100, 0.2, TrendUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(tt.current, tt.previous)
			assert.InDelta(t, tt.wantChange, got.Change, 1e-9)
			assert.Equal(t, tt.wantTrend, got.Trend)
		})
	}
}

func TestDaysOfCashRemaining(t *testing.T) {
	assert.Equal(t, float64(90), DaysOfCashRemaining(30000, 10000))
	assert.Equal(t, float64(45), DaysOfCashRemaining(15200, 10000))

	assert.True(t, math.IsInf(DaysOfCashRemaining(1000, 0), 1), "zero burn means cash never runs out")
	assert.True(t, math.IsInf(DaysOfCashRemaining(1000, -50), 1), "negative burn means cash never runs out")
}

func TestBreakEven(t *testing.T) {
	point := BreakEven(10000, 40, 100)
	assert.Equal(t, float64(167), point.Units) // ceil(10000/60)
	assert.Equal(t, float64(16700), point.Revenue)

	// Break-even units always cover fixed costs.
	require.GreaterOrEqual(t, point.Units*(100-40), float64(10000))
}

func TestBreakEven_NoContributionMargin(t *testing.T) {
	for _, price := range []float64{40, 30} {
		point := BreakEven(10000, 40, price)
		assert.True(t, math.IsInf(point.Units, 1), "price %v should be unreachable", price)
		assert.True(t, math.IsInf(point.Revenue, 1))
	}
}

func TestProfitMargin(t *testing.T) {
	assert.Equal(t, float64(0), ProfitMargin(0, 500), "zero revenue must not divide by zero")
	assert.InDelta(t, 25, ProfitMargin(1000, 750), 1e-9)
	assert.InDelta(t, -50, ProfitMargin(1000, 1500), 1e-9)
}
