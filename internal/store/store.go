// Package store defines the authoritative record collection and its
// in-memory implementation. All access goes through the four operations;
// no other component holds a reference to the raw collection.
package store

import (
	"context"

	"ledger/internal/core"
)

// Store is the contract every record backend satisfies. Operations take a
// context so a durable backend (disk, network) can substitute without
// changing callers.
type Store interface {
	// Add appends the record unconditionally. The caller guarantees ID
	// uniqueness; the store performs no duplicate check.
	Add(ctx context.Context, r core.Record) error

	// List returns an independent snapshot of all records in insertion
	// order. Mutating the returned slice never affects the store.
	List(ctx context.Context) ([]core.Record, error)

	// Update replaces the stored record with a matching ID in place,
	// preserving its position. Unknown IDs are a silent no-op.
	Update(ctx context.Context, r core.Record) error

	// Delete removes every record with the given ID (expected zero or
	// one). Unknown IDs are a silent no-op.
	Delete(ctx context.Context, id string) error
}
