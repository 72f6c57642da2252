package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"ledger/internal/core"
	"ledger/internal/repository"
	"ledger/internal/store"
)

func TestSetDelegatesToRepository(t *testing.T) {
	ctx := context.Background()
	set := NewSet(repository.New(store.NewMemoryStore()))

	r := core.Record{
		ID:          "r1",
		Description: "coffee",
		Amount:      core.Money{Cents: 450},
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:    core.CategoryFood,
	}
	if err := set.Add.Execute(ctx, r); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := set.List.Execute(ctx)
	if err != nil || len(got) != 1 || got[0] != r {
		t.Fatalf("list: got=%v err=%v", got, err)
	}

	r.Amount = core.Money{Cents: 500}
	if err := set.Update.Execute(ctx, r); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = set.List.Execute(ctx)
	if got[0].Amount.Cents != 500 {
		t.Fatalf("update not applied: %v", got[0])
	}

	if err := set.Delete.Execute(ctx, "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = set.List.Execute(ctx)
	if len(got) != 0 {
		t.Fatalf("delete not applied: %v", got)
	}
}

type erroringRepo struct{ err error }

func (e erroringRepo) Add(context.Context, core.Record) error { return e.err }
func (e erroringRepo) List(context.Context) ([]core.Record, error) { return nil, e.err }
func (e erroringRepo) Update(context.Context, core.Record) error { return e.err }
func (e erroringRepo) Delete(context.Context, string) error { return e.err }

func TestHandlersForwardErrorsUnchanged(t *testing.T) {
	ctx := context.Background()
	base := errors.New("storage failure")
	set := NewSet(erroringRepo{err: base})

	if err := set.Add.Execute(ctx, core.Record{}); err != base {
		t.Fatalf("add should forward the repository error unchanged, got %v", err)
	}
	if _, err := set.List.Execute(ctx); err != base {
		t.Fatalf("list should forward the repository error unchanged, got %v", err)
	}
	if err := set.Update.Execute(ctx, core.Record{}); err != base {
		t.Fatalf("update should forward the repository error unchanged, got %v", err)
	}
	if err := set.Delete.Execute(ctx, "x"); err != base {
		t.Fatalf("delete should forward the repository error unchanged, got %v", err)
	}
}
