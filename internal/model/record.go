package model

import "time"

// Record is a transaction that passed validation. It carries the parsed
// timestamp and the calendar day the transaction belongs to, truncated in
// the reporting timezone. Time of day is discarded for bucketing.
type Record struct {
	Transaction
	OccurredAt time.Time
	Day        time.Time
}

// DateKey returns the record's bucket day as an ISO date string.
func (r Record) DateKey() string {
	return r.Day.Format("2006-01-02")
}

// Partition splits raw transactions into validated records and rejected
// rows. A row is rejected when its timestamp cannot be parsed or its amount
// is negative; rejection never fails the call, so callers can aggregate
// best-effort over whatever the provider returned.
func Partition(txns []Transaction, loc *time.Location) (valid []Record, rejected []Transaction) {
	if loc == nil {
		loc = time.UTC
	}
	valid = make([]Record, 0, len(txns))
	for _, t := range txns {
		ts, err := t.ParseCreatedAt(loc)
		if err != nil || t.Amount < 0 {
			rejected = append(rejected, t)
			continue
		}
		local := ts.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		valid = append(valid, Record{Transaction: t, OccurredAt: ts, Day: day})
	}
	return valid, rejected
}
