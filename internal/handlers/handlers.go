// Package handlers contains one single-purpose handler per record
// operation. Each handler invokes exactly one repository method and
// forwards the result unchanged. They are the seam where validation and
// business rules belong when they arrive; the store stays rule-free.
package handlers

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/repository"
)

type AddRecord struct {
	repo repository.Repository
}

func NewAddRecord(repo repository.Repository) *AddRecord {
	return &AddRecord{repo: repo}
}

func (h *AddRecord) Execute(ctx context.Context, r core.Record) error {
	return h.repo.Add(ctx, r)
}

type ListRecords struct {
	repo repository.Repository
}

func NewListRecords(repo repository.Repository) *ListRecords {
	return &ListRecords{repo: repo}
}

func (h *ListRecords) Execute(ctx context.Context) ([]core.Record, error) {
	return h.repo.List(ctx)
}

type UpdateRecord struct {
	repo repository.Repository
}

func NewUpdateRecord(repo repository.Repository) *UpdateRecord {
	return &UpdateRecord{repo: repo}
}

func (h *UpdateRecord) Execute(ctx context.Context, r core.Record) error {
	return h.repo.Update(ctx, r)
}

type DeleteRecord struct {
	repo repository.Repository
}

func NewDeleteRecord(repo repository.Repository) *DeleteRecord {
	return &DeleteRecord{repo: repo}
}

func (h *DeleteRecord) Execute(ctx context.Context, id string) error {
	return h.repo.Delete(ctx, id)
}

// Set bundles the four handlers the controller is constructed with.
type Set struct {
	Add    *AddRecord
	List   *ListRecords
	Update *UpdateRecord
	Delete *DeleteRecord
}

// NewSet wires all four handlers against one repository.
func NewSet(repo repository.Repository) Set {
	return Set{
		Add:    NewAddRecord(repo),
		List:   NewListRecords(repo),
		Update: NewUpdateRecord(repo),
		Delete: NewDeleteRecord(repo),
	}
}
