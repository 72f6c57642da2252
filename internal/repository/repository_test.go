package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ledger/internal/core"
	"ledger/internal/store"
)

func TestRecordRepositoryDelegates(t *testing.T) {
	ctx := context.Background()
	repo := New(store.NewMemoryStore())

	r := core.Record{
		ID:          "r1",
		Description: "coffee",
		Amount:      core.Money{Cents: 450},
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:    core.CategoryFood,
	}
	if err := repo.Add(ctx, r); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil || len(got) != 1 || got[0] != r {
		t.Fatalf("list: got=%v err=%v", got, err)
	}

	r.Description = "espresso"
	if err := repo.Update(ctx, r); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.List(ctx)
	if got[0].Description != "espresso" {
		t.Fatalf("update not forwarded: %v", got[0])
	}

	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = repo.List(ctx)
	if len(got) != 0 {
		t.Fatalf("delete not forwarded: %v", got)
	}
}

type failingStore struct{ err error }

func (f failingStore) Add(context.Context, core.Record) error { return f.err }
func (f failingStore) List(context.Context) ([]core.Record, error) { return nil, f.err }
func (f failingStore) Update(context.Context, core.Record) error { return f.err }
func (f failingStore) Delete(context.Context, string) error { return f.err }

func TestRecordRepositoryWrapsErrors(t *testing.T) {
	ctx := context.Background()
	base := errors.New("backend down")
	repo := New(failingStore{err: base})

	if err := repo.Add(ctx, core.Record{ID: "x"}); !errors.Is(err, base) {
		t.Fatalf("add error not wrapped: %v", err)
	}
	if _, err := repo.List(ctx); !errors.Is(err, base) {
		t.Fatalf("list error not wrapped: %v", err)
	}
	if err := repo.Update(ctx, core.Record{ID: "x"}); !errors.Is(err, base) {
		t.Fatalf("update error not wrapped: %v", err)
	}
	if err := repo.Delete(ctx, "x"); !errors.Is(err, base) {
		t.Fatalf("delete error not wrapped: %v", err)
	}
}
