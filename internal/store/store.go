package store

import (
	"context"
	"time"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// Filter narrows a transaction listing. The zero value matches everything.
// Filters are plain values: callers merge their overrides over an explicit
// default instead of mutating shared state.
type Filter struct {
	UserID string
	Status model.TransactionStatus
	Type   model.TransactionType
	Start  *time.Time
	End    *time.Time
}

// Merge returns f with any zero field replaced by the corresponding default.
func (f Filter) Merge(defaults Filter) Filter {
	if f.UserID == "" {
		f.UserID = defaults.UserID
	}
	if f.Status == "" {
		f.Status = defaults.Status
	}
	if f.Type == "" {
		f.Type = defaults.Type
	}
	if f.Start == nil {
		f.Start = defaults.Start
	}
	if f.End == nil {
		f.End = defaults.End
	}
	return f
}

// Store is the transaction data provider boundary. The analytics service
// only ever reads through it; in production the dashboard's REST client
// sits behind this interface, and tests use the in-memory implementation or
// the generated mock.
type Store interface {
	AddTransactions(ctx context.Context, txns []model.Transaction) error
	ListTransactions(ctx context.Context, filter Filter) ([]model.Transaction, error)
}
