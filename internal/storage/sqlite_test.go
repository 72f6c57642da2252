package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ledger/internal/core"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func rec(id, desc string, cents int64) core.Record {
	return core.Record{
		ID:          id,
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:    core.CategoryFood,
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, r := range []core.Record{rec("a", "coffee", 450), rec("b", "bus", 180)} {
		if err := s.Add(ctx, r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected records: %v", got)
	}
	if !got[0].Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date did not survive round trip: %v", got[0].Date)
	}
}

func TestSQLiteStoreUpdatePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, r := range []core.Record{rec("a", "coffee", 450), rec("b", "bus", 180), rec("c", "rent", 90000)} {
		if err := s.Add(ctx, r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := s.Update(ctx, rec("b", "train", 520)); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := s.List(ctx)
	if got[1].ID != "b" || got[1].Description != "train" || got[1].Amount.Cents != 520 {
		t.Fatalf("update not applied in place: %v", got)
	}
	if got[0].Description != "coffee" || got[2].Description != "rent" {
		t.Fatalf("neighbors changed: %v", got)
	}
}

func TestSQLiteStoreMissingIDNoops(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := s.Add(ctx, rec("a", "coffee", 450)); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.Update(ctx, rec("ghost", "x", 1)); err != nil {
		t.Fatalf("update missing should be silent: %v", err)
	}
	if err := s.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("delete missing should be silent: %v", err)
	}

	got, _ := s.List(ctx)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("store changed by missing-id operations: %v", got)
	}
}

func TestSQLiteStoreUpsertAndCount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	r := rec("a", "coffee", 450)
	if err := s.Upsert(ctx, r); err != nil {
		t.Fatalf("insert upsert: %v", err)
	}
	r.Amount = core.Money{Cents: 500}
	if err := s.Upsert(ctx, r); err != nil {
		t.Fatalf("update upsert: %v", err)
	}

	got, _ := s.List(ctx)
	if len(got) != 1 || got[0].Amount.Cents != 500 {
		t.Fatalf("upsert should update in place: %v", got)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count: n=%d err=%v", n, err)
	}
}
