package store

import (
	"context"
	"testing"
	"time"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
)

func seed(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	err := s.AddTransactions(context.Background(), []model.Transaction{
		{ID: "t1", UserID: "u1", Status: model.StatusSuccessful, TransactionType: model.TypeCashIn, CreatedAt: "2026-03-01T10:00:00Z"},
		{ID: "t2", UserID: "u2", Status: model.StatusFailed, TransactionType: model.TypeCashOut, CreatedAt: "2026-03-02T10:00:00Z"},
		{ID: "t3", UserID: "u1", Status: model.StatusSuccessful, TransactionType: model.TypeCashOut, CreatedAt: "2026-03-03T10:00:00Z"},
		{UserID: "u3", Status: model.StatusPending, TransactionType: model.TypeCashIn, CreatedAt: "bogus"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestListTransactions_PreservesInsertionOrder(t *testing.T) {
	s := seed(t)
	txns, err := s.ListTransactions(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txns) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(txns))
	}
	if txns[0].ID != "t1" || txns[1].ID != "t2" || txns[2].ID != "t3" {
		t.Fatalf("insertion order not preserved: %v %v %v", txns[0].ID, txns[1].ID, txns[2].ID)
	}
}

func TestAddTransactions_AssignsMissingIDs(t *testing.T) {
	s := seed(t)
	txns, _ := s.ListTransactions(context.Background(), Filter{})
	if txns[3].ID == "" {
		t.Fatal("expected an ID to be assigned to the record that had none")
	}
}

func TestListTransactions_Filters(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	byUser, err := s.ListTransactions(ctx, Filter{UserID: "u1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("user filter: got %d, want 2", len(byUser))
	}

	byStatus, _ := s.ListTransactions(ctx, Filter{Status: model.StatusFailed})
	if len(byStatus) != 1 || byStatus[0].ID != "t2" {
		t.Fatalf("status filter: got %+v", byStatus)
	}

	byType, _ := s.ListTransactions(ctx, Filter{Type: model.TypeCashOut})
	if len(byType) != 2 {
		t.Fatalf("type filter: got %d, want 2", len(byType))
	}
}

func TestListTransactions_TimeWindowExcludesUnparsable(t *testing.T) {
	s := seed(t)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	txns, err := s.ListTransactions(context.Background(), Filter{Start: &start, End: &end})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// t2, t3 in window; t1 before it; the bogus-timestamp row can't be compared.
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions in window, got %d", len(txns))
	}
}

func TestFilterMerge(t *testing.T) {
	defaults := Filter{Status: model.StatusSuccessful, UserID: "default-user"}
	merged := Filter{UserID: "override"}.Merge(defaults)
	if merged.UserID != "override" {
		t.Errorf("override lost: %q", merged.UserID)
	}
	if merged.Status != model.StatusSuccessful {
		t.Errorf("default not applied: %q", merged.Status)
	}
}
