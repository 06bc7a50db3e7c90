package finmath

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ThresholdType selects how an AnomalyThreshold is evaluated.
type ThresholdType string

const (
	ThresholdAbove         ThresholdType = "above"
	ThresholdBelow         ThresholdType = "below"
	ThresholdPercentChange ThresholdType = "percentage_change"
)

// Severity grades how far an anomalous value deviates.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AnomalyThreshold is a caller-supplied rule: flag Field when its value
// breaches Threshold in the direction given by Type.
type AnomalyThreshold struct {
	Field     string        `json:"field"`
	Threshold float64       `json:"threshold"`
	Type      ThresholdType `json:"type"`
}

// DetectedAnomaly is one fired threshold.
type DetectedAnomaly struct {
	ID        string   `json:"id"`
	Field     string   `json:"field"`
	Value     float64  `json:"value"`
	Threshold float64  `json:"threshold"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
}

// DetectAnomalies evaluates each threshold against data. Fields absent from
// data are skipped silently. The percentage_change type needs previous data
// for the same field and is skipped when it is missing. An unrecognized
// threshold type is a caller error and fails the whole call immediately.
//
// Severity scales with the deviation percentage: >50% critical, >25% high,
// >10% medium, otherwise low.
func DetectAnomalies(data map[string]float64, thresholds []AnomalyThreshold, previous map[string]float64) ([]DetectedAnomaly, error) {
	var anomalies []DetectedAnomaly
	for _, th := range thresholds {
		value, ok := data[th.Field]
		if !ok {
			continue
		}
		switch th.Type {
		case ThresholdAbove:
			if value > th.Threshold {
				pct := deviationPercent(value-th.Threshold, th.Threshold)
				anomalies = append(anomalies, DetectedAnomaly{
					ID:        uuid.New().String(),
					Field:     th.Field,
					Value:     value,
					Threshold: th.Threshold,
					Severity:  severityFor(pct),
					Message:   fmt.Sprintf("%s is %.1f%% above threshold (%.2f > %.2f)", th.Field, pct, value, th.Threshold),
				})
			}
		case ThresholdBelow:
			if value < th.Threshold {
				pct := deviationPercent(th.Threshold-value, th.Threshold)
				anomalies = append(anomalies, DetectedAnomaly{
					ID:        uuid.New().String(),
					Field:     th.Field,
					Value:     value,
					Threshold: th.Threshold,
					Severity:  severityFor(pct),
					Message:   fmt.Sprintf("%s is %.1f%% below threshold (%.2f < %.2f)", th.Field, pct, value, th.Threshold),
				})
			}
		case ThresholdPercentChange:
			prev, ok := previous[th.Field]
			if !ok {
				continue
			}
			change := math.Abs(PercentageChange(value, prev).Change)
			if change > th.Threshold {
				anomalies = append(anomalies, DetectedAnomaly{
					ID:        uuid.New().String(),
					Field:     th.Field,
					Value:     value,
					Threshold: th.Threshold,
					Severity:  severityFor(change),
					Message:   fmt.Sprintf("%s changed %.1f%% since the previous period (threshold %.1f%%)", th.Field, change, th.Threshold),
				})
			}
		default:
			return nil, fmt.Errorf("unknown threshold type: %q", th.Type)
		}
	}
	return anomalies, nil
}

func deviationPercent(delta, threshold float64) float64 {
	if threshold == 0 {
		// Any breach of a zero threshold is maximally out of band.
		return 100
	}
	return delta / math.Abs(threshold) * 100
}

func severityFor(pct float64) Severity {
	switch {
	case pct > 50:
		return SeverityCritical
	case pct > 25:
		return SeverityHigh
	case pct > 10:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
