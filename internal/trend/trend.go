// Package trend turns raw transaction lists into day-bucketed series and
// cross-cutting aggregate views for the dashboard. Every function is a pure
// computation over its arguments; buckets are recomputed on each call and
// never cached or persisted.
package trend

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
)

// ErrInvalidRange is returned when the requested end date falls before the
// start date. The bounds are never swapped or clamped.
var ErrInvalidRange = errors.New("end date is before start date")

// DayBucket holds per-day aggregates for one calendar day of a trend range.
// FailureRate is a 0-100 percentage and is 0 for empty days, never NaN.
type DayBucket struct {
	Date            string  `json:"date"`
	Volume          float64 `json:"volume"`
	Count           int     `json:"count"`
	ActiveUsers     int     `json:"activeUsers"`
	NewUsers        int     `json:"newUsers"`
	SuccessfulCount int     `json:"successfulCount"`
	FailedCount     int     `json:"failedCount"`
	PendingCount    int     `json:"pendingCount"`
	FailureRate     float64 `json:"failureRate"`
}

type dayAgg struct {
	volume     decimal.Decimal
	count      int
	successful int
	failed     int
	pending    int
	users      map[string]struct{}
}

// DailyTrend partitions transactions into calendar-day buckets over the
// inclusive [start, end] range in the reporting timezone loc. The result has
// exactly one bucket per day in chronological order; days without
// transactions get an all-zero bucket. Transactions outside the range are
// excluded, and rows with unparsable timestamps are skipped rather than
// failing the call.
func DailyTrend(txns []model.Transaction, start, end time.Time, loc *time.Location) ([]DayBucket, error) {
	if loc == nil {
		loc = time.UTC
	}
	startDay := truncateDay(start, loc)
	endDay := truncateDay(end, loc)
	if endDay.Before(startDay) {
		return nil, ErrInvalidRange
	}

	records, _ := model.Partition(txns, loc)
	firstSeen := firstSeenDates(records)

	byDay := make(map[string]*dayAgg)
	for _, r := range records {
		if r.Day.Before(startDay) || r.Day.After(endDay) {
			continue
		}
		key := r.DateKey()
		agg, ok := byDay[key]
		if !ok {
			agg = &dayAgg{volume: decimal.Zero, users: make(map[string]struct{})}
			byDay[key] = agg
		}
		agg.count++
		if r.UserID != "" {
			agg.users[r.UserID] = struct{}{}
		}
		switch r.Status {
		case model.StatusSuccessful:
			agg.successful++
			agg.volume = agg.volume.Add(decimal.NewFromFloat(r.Amount))
		case model.StatusFailed:
			agg.failed++
		case model.StatusPending:
			agg.pending++
		}
	}

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	buckets := make([]DayBucket, 0, days)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		bucket := DayBucket{Date: key}
		if agg, ok := byDay[key]; ok {
			bucket.Volume = agg.volume.InexactFloat64()
			bucket.Count = agg.count
			bucket.ActiveUsers = len(agg.users)
			bucket.SuccessfulCount = agg.successful
			bucket.FailedCount = agg.failed
			bucket.PendingCount = agg.pending
			if agg.count > 0 {
				bucket.FailureRate = float64(agg.failed) / float64(agg.count) * 100
			}
			for user := range agg.users {
				if firstSeen[user] == key {
					bucket.NewUsers++
				}
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// ByUserFirstSeen maps each user to the earliest ISO date they transacted.
// A user counts as new on day D when their first-seen date equals D.
// Rows with unparsable timestamps are skipped.
func ByUserFirstSeen(txns []model.Transaction, loc *time.Location) map[string]string {
	records, _ := model.Partition(txns, loc)
	return firstSeenDates(records)
}

func firstSeenDates(records []model.Record) map[string]string {
	firstSeen := make(map[string]string)
	for _, r := range records {
		if r.UserID == "" {
			continue
		}
		key := r.DateKey()
		if existing, ok := firstSeen[r.UserID]; !ok || key < existing {
			firstSeen[r.UserID] = key
		}
	}
	return firstSeen
}

func truncateDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
