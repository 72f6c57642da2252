// Package worker applies record-change events to the durable sqlite
// mirror. The in-memory store stays authoritative for the running server;
// the mirror survives restarts and feeds reporting tools.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ledger/internal/events"
	"ledger/internal/storage"
)

type SyncWorker struct {
	mirror *storage.SQLiteStore
}

func NewSyncWorker(mirror *storage.SQLiteStore) *SyncWorker {
	return &SyncWorker{mirror: mirror}
}

// HandleEvent applies a single change event. Upserts are idempotent, so
// redelivered messages converge to the same mirror state.
func (w *SyncWorker) HandleEvent(ctx context.Context, e events.RecordEvent) error {
	switch e.Type {
	case events.TypeUpsert:
		if err := w.mirror.Upsert(ctx, e.Record()); err != nil {
			return fmt.Errorf("apply upsert: %w", err)
		}
	case events.TypeDelete:
		if err := w.mirror.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("apply delete: %w", err)
		}
	default:
		return fmt.Errorf("unknown event type: %s", e.Type)
	}

	slog.InfoContext(ctx, "Applied record event to mirror",
		"event_type", string(e.Type),
		"record_id", e.ID)
	return nil
}

// Reconcile logs the mirror size on a fixed interval until ctx is
// cancelled. It is a liveness signal for the worker, not a repair job.
func (w *SyncWorker) Reconcile(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := w.mirror.Count(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to count mirror records", "error", err)
				continue
			}
			slog.InfoContext(ctx, "Mirror reconcile tick", "records", n)
		}
	}
}
