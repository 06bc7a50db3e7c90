package model

import (
	"time"
)

// TransactionType identifies the direction of a wallet transaction.
type TransactionType string

const (
	TypeCashIn  TransactionType = "CASH_IN"
	TypeCashOut TransactionType = "CASH_OUT"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
	StatusRolledBack TransactionStatus = "ROLLED_BACK"
)

// Transaction is a raw wallet transaction as supplied by the data provider.
// The analytics layer never mutates these records.
//
// CreatedAt is kept as the provider's raw string; parsing happens during
// validation so a bad timestamp rejects one row instead of failing a call.
type Transaction struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Amount           float64           `json:"amount"`
	TransactionType  TransactionType   `json:"transactionType"`
	Status           TransactionStatus `json:"status"`
	ChargeFee        *float64          `json:"chargeFee,omitempty"`
	CommissionAmount *float64          `json:"commissionAmount,omitempty"`
	CreatedAt        string            `json:"createdAt"`
}

// Fee returns the fee charged on the transaction. ChargeFee takes
// precedence over the legacy CommissionAmount alias when both are set.
func (t Transaction) Fee() float64 {
	if t.ChargeFee != nil {
		return *t.ChargeFee
	}
	if t.CommissionAmount != nil {
		return *t.CommissionAmount
	}
	return 0
}

// timestampLayouts are tried in order when parsing CreatedAt.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCreatedAt parses the raw CreatedAt string in the given location.
// Layouts that carry their own offset (RFC3339) keep it; bare layouts are
// interpreted in loc.
func (t Transaction) ParseCreatedAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.ParseInLocation(layout, t.CreatedAt, loc)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
