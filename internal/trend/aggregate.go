package trend

import (
	"github.com/shopspring/decimal"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
)

// TypeStats aggregates transactions of one type. Amounts use decimal so the
// per-type totals rendered on invoices don't accumulate float drift.
type TypeStats struct {
	Count        int             `json:"count"`
	SuccessCount int             `json:"successCount"`
	FailCount    int             `json:"failCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AvgAmount    decimal.Decimal `json:"avgAmount"`
}

// SummaryMetrics are the headline KPI-card numbers. SuccessRate and
// FailureRate are 0-100 percentages and are 0 (not NaN) for empty input.
type SummaryMetrics struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalVolume       float64 `json:"totalVolume"`
	ActiveUsers       int     `json:"activeUsers"`
	SuccessRate       float64 `json:"successRate"`
	TotalFees         float64 `json:"totalFees"`
	FailureRate       float64 `json:"failureRate"`
}

// RiskDistribution counts users per risk band.
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// ByType breaks transactions down per transaction type. Timestamps are not
// needed here, so malformed dates do not exclude a row from this view.
func ByType(txns []model.Transaction) map[model.TransactionType]TypeStats {
	out := make(map[model.TransactionType]TypeStats)
	for _, t := range txns {
		stats := out[t.TransactionType]
		stats.Count++
		switch t.Status {
		case model.StatusSuccessful:
			stats.SuccessCount++
		case model.StatusFailed:
			stats.FailCount++
		}
		stats.TotalAmount = stats.TotalAmount.Add(decimal.NewFromFloat(t.Amount))
		out[t.TransactionType] = stats
	}
	for typ, stats := range out {
		if stats.Count > 0 {
			stats.AvgAmount = stats.TotalAmount.Div(decimal.NewFromInt(int64(stats.Count)))
		}
		out[typ] = stats
	}
	return out
}

// Summary computes the KPI-card metrics over the whole list. Volume counts
// successful transactions only; fees use the ChargeFee/CommissionAmount
// precedence rule.
func Summary(txns []model.Transaction) SummaryMetrics {
	m := SummaryMetrics{TotalTransactions: len(txns)}
	if len(txns) == 0 {
		return m
	}

	volume := decimal.Zero
	fees := decimal.Zero
	users := make(map[string]struct{})
	var successful, failed int
	for _, t := range txns {
		if t.UserID != "" {
			users[t.UserID] = struct{}{}
		}
		fees = fees.Add(decimal.NewFromFloat(t.Fee()))
		switch t.Status {
		case model.StatusSuccessful:
			successful++
			volume = volume.Add(decimal.NewFromFloat(t.Amount))
		case model.StatusFailed:
			failed++
		}
	}
	m.TotalVolume = volume.InexactFloat64()
	m.TotalFees = fees.InexactFloat64()
	m.ActiveUsers = len(users)
	m.SuccessRate = float64(successful) / float64(len(txns)) * 100
	m.FailureRate = float64(failed) / float64(len(txns)) * 100
	return m
}

// RiskScoreDistribution buckets users by a running risk score computed in
// input order: FAILED adds 2, ROLLED_BACK adds 3, SUCCESSFUL subtracts 0.5
// with the score floored at 0 after each subtraction. Final scores bucket as
// low (<2), medium (<5), high (>=5).
//
// Because of the floor, the result depends on transaction order: successes
// that arrive while a user's score is already 0 are absorbed, while the same
// successes after failures reduce the score. This mirrors the behavior the
// reporting pages were built against, so it is kept as-is.
func RiskScoreDistribution(txns []model.Transaction) RiskDistribution {
	scores := make(map[string]float64)
	for _, t := range txns {
		if t.UserID == "" {
			continue
		}
		score := scores[t.UserID]
		switch t.Status {
		case model.StatusFailed:
			score += 2
		case model.StatusRolledBack:
			score += 3
		case model.StatusSuccessful:
			score -= 0.5
			if score < 0 {
				score = 0
			}
		}
		scores[t.UserID] = score
	}

	var dist RiskDistribution
	for _, score := range scores {
		switch {
		case score < 2:
			dist.Low++
		case score < 5:
			dist.Medium++
		default:
			dist.High++
		}
	}
	return dist
}
