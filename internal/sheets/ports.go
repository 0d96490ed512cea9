package sheets

import (
	"context"

	"financas/internal/core"
)

// Ports for outbound adapters.
type (
	// TransactionMirror keeps an external copy of the transaction log.
	TransactionMirror interface {
		// Upsert writes or replaces the row for the given transaction.
		Upsert(ctx context.Context, t core.Transaction) error
		// Remove clears the row for the given transaction id. Removing
		// an id that was never mirrored is a no-op.
		Remove(ctx context.Context, id int64) error
	}
)
