// Package backend selects and constructs the authoritative record store
// from configuration.
package backend

import (
	"fmt"
	"log/slog"

	"ledger/internal/config"
	"ledger/internal/storage"
	"ledger/internal/store"
)

type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates record stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the configured store backend.
func (f *Factory) CreateStore(cfg *config.Config) (*Result, error) {
	backendType := Type(cfg.StoreBackend)
	if !backendType.IsValid() {
		return nil, fmt.Errorf("invalid store backend: %s", cfg.StoreBackend)
	}

	switch backendType {
	case SQLiteBackend:
		sqliteStore, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized sqlite store", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: sqliteStore, Cleanup: sqliteStore.Close}, nil
	default:
		f.logger.Info("Initialized memory store")
		return &Result{Store: store.NewMemoryStore()}, nil
	}
}
