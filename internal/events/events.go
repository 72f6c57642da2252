// Package events defines the record-change messages emitted after
// successful mutations, and the port a broker client implements to carry
// them. Consumers use the payload to keep a durable mirror in step with
// the in-memory store.
package events

import (
	"context"
	"encoding/json"
	"time"

	"ledger/internal/core"
)

type Type string

const (
	TypeUpsert Type = "upsert"
	TypeDelete Type = "delete"
)

// RecordEvent is the wire message for one record mutation. Upsert events
// carry the full record; delete events carry only the ID.
type RecordEvent struct {
	Type        Type      `json:"type"`
	ID          string    `json:"id"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewUpsert(r core.Record) RecordEvent {
	return RecordEvent{
		Type:        TypeUpsert,
		ID:          r.ID,
		Description: r.Description,
		AmountCents: r.Amount.Cents,
		Date:        r.Date,
		Category:    r.Category,
		Timestamp:   time.Now(),
	}
}

func NewDelete(id string) RecordEvent {
	return RecordEvent{
		Type:      TypeDelete,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// Record reconstructs the core record from an upsert event.
func (e RecordEvent) Record() core.Record {
	return core.Record{
		ID:          e.ID,
		Description: e.Description,
		Amount:      core.Money{Cents: e.AmountCents},
		Date:        e.Date,
		Category:    e.Category,
	}
}

func (e RecordEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func FromJSON(data []byte) (RecordEvent, error) {
	var e RecordEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return RecordEvent{}, err
	}
	return e, nil
}

// Publisher carries record events to interested consumers. Publishing is
// best effort from the caller's point of view: a failed publish must not
// fail the user-facing operation.
type Publisher interface {
	Publish(ctx context.Context, e RecordEvent) error
}
