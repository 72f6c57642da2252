// Package storage provides the sqlite-backed record store. It satisfies
// the same contract as the in-memory store so it can be substituted behind
// the repository without touching callers, and it backs the sync worker's
// durable mirror.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ledger/internal/core"
	"ledger/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Add(ctx context.Context, r core.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (id, description, amount_cents, date, category)
		 VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Description, r.Amount.Cents, r.Date.Format(time.RFC3339), r.Category)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to sqlite",
		"record_id", r.ID,
		"description", r.Description,
		"amount_cents", r.Amount.Cents)
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]core.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount_cents, date, category
		 FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var (
			r       core.Record
			rawDate string
		)
		if err := rows.Scan(&r.ID, &r.Description, &r.Amount.Cents, &rawDate, &r.Category); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Date, err = time.Parse(time.RFC3339, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse record date %q: %w", rawDate, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Update replaces the earliest-positioned record with a matching ID,
// keeping its position. Unknown IDs are a silent no-op, matching the
// in-memory store's contract.
func (s *SQLiteStore) Update(ctx context.Context, r core.Record) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE records SET description = ?, amount_cents = ?, date = ?, category = ?
		 WHERE position = (SELECT position FROM records WHERE id = ? ORDER BY position LIMIT 1)`,
		r.Description, r.Amount.Cents, r.Date.Format(time.RFC3339), r.Category, r.ID)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Upsert updates the record with a matching ID or inserts it when absent.
// The sync worker uses it to apply change events idempotently.
func (s *SQLiteStore) Upsert(ctx context.Context, r core.Record) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET description = ?, amount_cents = ?, date = ?, category = ?
		 WHERE id = ?`,
		r.Description, r.Amount.Cents, r.Date.Format(time.RFC3339), r.Category, r.ID)
	if err != nil {
		return fmt.Errorf("upsert update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("upsert rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}
	return s.Add(ctx, r)
}

// Count returns the number of stored records, used by the worker's
// periodic reconcile logging.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

var _ store.Store = (*SQLiteStore)(nil)
