package finmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAnomalies_AboveSeverityBands(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Severity
	}{
		{"at 10 percent stays low", 110, SeverityLow},
		{"just above 10 percent", 110.5, SeverityMedium},
		{"at 25 percent stays medium", 125, SeverityMedium},
		{"just above 25 percent", 126, SeverityHigh},
		{"at 50 percent stays high", 150, SeverityHigh},
		{"just above 50 percent", 151, SeverityCritical},
	}
	thresholds := []AnomalyThreshold{{Field: "x", Threshold: 100, Type: ThresholdAbove}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies, err := DetectAnomalies(map[string]float64{"x": tt.value}, thresholds, nil)
			require.NoError(t, err)
			require.Len(t, anomalies, 1)
			assert.Equal(t, tt.want, anomalies[0].Severity)
			assert.Equal(t, "x", anomalies[0].Field)
			assert.Equal(t, tt.value, anomalies[0].Value)
			assert.NotEmpty(t, anomalies[0].ID)
			assert.NotEmpty(t, anomalies[0].Message)
		})
	}
}

func TestDetectAnomalies_AboveDoesNotFireAtOrBelowThreshold(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "x", Threshold: 100, Type: ThresholdAbove}}
	for _, value := range []float64{100, 99} {
		anomalies, err := DetectAnomalies(map[string]float64{"x": value}, thresholds, nil)
		require.NoError(t, err)
		assert.Empty(t, anomalies, "value %v should not fire", value)
	}
}

func TestDetectAnomalies_Below(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "balance", Threshold: 100, Type: ThresholdBelow}}

	anomalies, err := DetectAnomalies(map[string]float64{"balance": 40}, thresholds, nil)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	// 60% under threshold.
	assert.Equal(t, SeverityCritical, anomalies[0].Severity)

	anomalies, err = DetectAnomalies(map[string]float64{"balance": 150}, thresholds, nil)
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_PercentageChange(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "volume", Threshold: 20, Type: ThresholdPercentChange}}

	anomalies, err := DetectAnomalies(
		map[string]float64{"volume": 160},
		thresholds,
		map[string]float64{"volume": 100},
	)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	// |Δ%| = 60, severity bands applied to the change itself.
	assert.Equal(t, SeverityCritical, anomalies[0].Severity)

	// Drops count through the absolute change.
	anomalies, err = DetectAnomalies(
		map[string]float64{"volume": 70},
		thresholds,
		map[string]float64{"volume": 100},
	)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	assert.Equal(t, SeverityHigh, anomalies[0].Severity)
}

func TestDetectAnomalies_PercentageChangeWithoutPreviousSkips(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "volume", Threshold: 20, Type: ThresholdPercentChange}}
	anomalies, err := DetectAnomalies(map[string]float64{"volume": 500}, thresholds, nil)
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_MissingFieldSkipped(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "absent", Threshold: 10, Type: ThresholdAbove}}
	anomalies, err := DetectAnomalies(map[string]float64{"present": 100}, thresholds, nil)
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_UnknownTypeIsCallerError(t *testing.T) {
	thresholds := []AnomalyThreshold{{Field: "x", Threshold: 10, Type: "sideways"}}
	_, err := DetectAnomalies(map[string]float64{"x": 100}, thresholds, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown threshold type")
}
