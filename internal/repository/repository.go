// Package repository is the abstraction boundary between business logic
// and storage technology. It delegates one-to-one to a store.Store so
// callers never depend on a concrete backend.
package repository

import (
	"context"
	"fmt"

	"ledger/internal/core"
	"ledger/internal/store"
)

// Repository exposes the four record operations behind a stable interface.
type Repository interface {
	Add(ctx context.Context, r core.Record) error
	List(ctx context.Context) ([]core.Record, error)
	Update(ctx context.Context, r core.Record) error
	Delete(ctx context.Context, id string) error
}

// RecordRepository forwards every call verbatim to its backing store.
type RecordRepository struct {
	store store.Store
}

func New(s store.Store) *RecordRepository {
	return &RecordRepository{store: s}
}

func (r *RecordRepository) Add(ctx context.Context, record core.Record) error {
	if err := r.store.Add(ctx, record); err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	return nil
}

func (r *RecordRepository) List(ctx context.Context) ([]core.Record, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) Update(ctx context.Context, record core.Record) error {
	if err := r.store.Update(ctx, record); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

var _ Repository = (*RecordRepository)(nil)
