package finmath

import (
	"fmt"
	"math"
)

// ForecastMethod selects the forecasting model.
type ForecastMethod string

const (
	MethodLinear        ForecastMethod = "linear"
	MethodExponential   ForecastMethod = "exponential"
	MethodMovingAverage ForecastMethod = "moving_average"
)

// ForecastOptions configures Forecast. GrowthRate applies to the exponential
// method only; when nil the rate is derived from the historical series.
type ForecastOptions struct {
	Method     ForecastMethod `json:"method"`
	GrowthRate *float64       `json:"growthRate,omitempty"`
}

// Forecast predicts the next periods values from a historical series. The
// input series is never mutated. An empty series forecasts all zeros and a
// single-point series repeats that point; an unrecognized method is a caller
// error.
func Forecast(series []float64, periods int, opts ForecastOptions) ([]float64, error) {
	switch opts.Method {
	case MethodLinear, MethodExponential, MethodMovingAverage:
	default:
		return nil, fmt.Errorf("unknown forecast method: %q", opts.Method)
	}
	if periods <= 0 {
		return []float64{}, nil
	}

	out := make([]float64, periods)
	if len(series) == 0 {
		return out, nil
	}
	if len(series) == 1 {
		for i := range out {
			out[i] = series[0]
		}
		return out, nil
	}

	switch opts.Method {
	case MethodLinear:
		slope, intercept := leastSquares(series)
		n := float64(len(series))
		for i := range out {
			out[i] = slope*(n+float64(i+1)) + intercept
		}
	case MethodExponential:
		rate := meanGrowthRate(series)
		if opts.GrowthRate != nil {
			rate = *opts.GrowthRate
		}
		last := series[len(series)-1]
		for i := range out {
			out[i] = last * math.Pow(1+rate, float64(i+1))
		}
	case MethodMovingAverage:
		window := 3
		if len(series) < window {
			window = len(series)
		}
		var sum float64
		for _, v := range series[len(series)-window:] {
			sum += v
		}
		avg := sum / float64(window)
		for i := range out {
			out[i] = avg
		}
	}
	return out, nil
}

// leastSquares fits value against the 1-based index of the series and
// returns the OLS slope and intercept.
func leastSquares(series []float64) (slope, intercept float64) {
	n := float64(len(series))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range series {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// meanGrowthRate averages period-over-period growth across the series,
// skipping steps whose prior value is 0 to avoid dividing by zero.
func meanGrowthRate(series []float64) float64 {
	var sum float64
	var count int
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev == 0 {
			continue
		}
		sum += (series[i] - prev) / prev
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
