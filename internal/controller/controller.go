// Package controller owns the UI-observable state: a mirror of the store's
// record list, a loading flag, and the derived total. Every mutation from
// the presentation layer passes through here, and registered listeners are
// invoked synchronously after each state change so views re-read.
package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"ledger/internal/core"
	"ledger/internal/events"
	"ledger/internal/handlers"
)

// Controller mediates between the presentation layer and the operation
// handlers. The mirrored record list is never the source of truth, but
// after any completed operation it matches the store's List result.
type Controller struct {
	handlers  handlers.Set
	publisher events.Publisher // optional; nil disables change events

	// opMu serializes mutations so the mirror never observes partial or
	// reordered effects from two operations racing.
	opMu sync.Mutex

	mu        sync.Mutex
	records   []core.Record
	loading   bool
	listeners map[int]func()
	nextID    int
}

func New(set handlers.Set, publisher events.Publisher) *Controller {
	return &Controller{
		handlers:  set,
		publisher: publisher,
		listeners: make(map[int]func()),
	}
}

// Subscribe registers a change listener and returns its cancel func.
// Listeners are invoked synchronously after each state mutation and must
// not call back into the controller's mutating methods.
func (c *Controller) Subscribe(fn func()) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Records returns a read-only snapshot of the mirrored list.
func (c *Controller) Records() []core.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Record(nil), c.records...)
}

func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Total recomputes the sum of all mirrored amounts on every call.
func (c *Controller) Total() core.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return core.SumAmounts(c.records)
}

// Load refreshes the mirror from the store. It emits exactly two change
// notifications per call: one when loading starts and one when it ends,
// regardless of outcome. On failure the previous records are kept and the
// error is both logged and returned.
func (c *Controller) Load(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
	c.notify()

	records, err := c.handlers.List.Execute(ctx)

	c.mu.Lock()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load records", "error", err)
	} else {
		c.records = records
	}
	c.loading = false
	c.mu.Unlock()
	c.notify()

	return err
}

// AddExpense generates a fresh ID, builds the record, and hands it to the
// add handler. Only on success is the mirror extended and a single change
// notification emitted; on failure the error propagates and local state is
// untouched.
func (c *Controller) AddExpense(ctx context.Context, fields core.RecordFields) (core.Record, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	record := core.Record{
		ID:          uuid.NewString(),
		Description: fields.Description,
		Amount:      fields.Amount,
		Date:        fields.Date,
		Category:    fields.Category,
	}

	if err := c.handlers.Add.Execute(ctx, record); err != nil {
		return core.Record{}, err
	}

	c.mu.Lock()
	c.records = append(c.records, record)
	c.mu.Unlock()
	c.notify()

	c.publish(ctx, events.NewUpsert(record))
	return record, nil
}

// UpdateExpense replaces the record with a matching ID. A change
// notification is emitted only when a local match existed; updating an
// unknown ID succeeds silently, mirroring the store's no-op contract.
func (c *Controller) UpdateExpense(ctx context.Context, record core.Record) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.handlers.Update.Execute(ctx, record); err != nil {
		return err
	}

	c.mu.Lock()
	matched := false
	for i := range c.records {
		if c.records[i].ID == record.ID {
			c.records[i] = record
			matched = true
			break
		}
	}
	c.mu.Unlock()

	if matched {
		c.notify()
		c.publish(ctx, events.NewUpsert(record))
	}
	return nil
}

// DeleteExpense removes all records with the given ID and emits one change
// notification whether or not anything matched.
func (c *Controller) DeleteExpense(ctx context.Context, id string) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.handlers.Delete.Execute(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.records[:0]
	for _, r := range c.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(c.records); i++ {
		c.records[i] = core.Record{}
	}
	c.records = kept
	c.mu.Unlock()

	c.notify()
	c.publish(ctx, events.NewDelete(id))
	return nil
}

// publish forwards a change event to the broker when one is wired.
// Failures are logged and swallowed: the mutation already succeeded.
func (c *Controller) publish(ctx context.Context, e events.RecordEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record event",
			"type", string(e.Type),
			"id", e.ID,
			"error", err)
	}
}
