// Package backend selects and constructs the transaction store at
// startup.
package backend

import (
	"context"

	"financas/internal/core"
)

// Store is the persistence contract the HTTP layer and the engine work
// against. Implementations validate and normalize records before
// persisting them. Mutations against absent ids succeed without effect,
// and ToggleStatus never touches investment records.
type Store interface {
	GetAll(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, t core.Transaction) (core.Transaction, error)
	Delete(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) error
	PortfolioValue(ctx context.Context) (core.Money, error)
	SetPortfolioValue(ctx context.Context, v core.Money) error
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Type names a store implementation.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Sync publishing, optional and only meaningful for sqlite
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}
