// Package worker mirrors persisted transactions to the configured
// external sheet.
package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/sheets"
)

// Storage is the slice of the repository the worker needs.
type Storage interface {
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	GetUnsynced(ctx context.Context, limit int) ([]core.Transaction, error)
	MarkSynced(ctx context.Context, id int64) error
}

// SyncWorker handles mirroring of transactions from SQLite to the sheet.
type SyncWorker struct {
	storage   Storage
	mirror    sheets.TransactionMirror
	batchSize int
}

func NewSyncWorker(storage Storage, mirror sheets.TransactionMirror, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		mirror:    mirror,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"action", msg.Action)

	switch msg.Action {
	case amqp.ActionDelete:
		if err := w.mirror.Remove(ctx, msg.ID); err != nil {
			return fmt.Errorf("remove transaction from mirror: %w", err)
		}
		return nil

	case amqp.ActionUpsert:
		t, err := w.storage.GetTransaction(ctx, msg.ID)
		if err != nil {
			// The record can be deleted between publish and consume.
			if errors.Is(err, sql.ErrNoRows) {
				slog.WarnContext(ctx, "Transaction no longer exists, skipping", "id", msg.ID)
				return nil
			}
			return fmt.Errorf("get transaction from storage: %w", err)
		}
		return w.syncToMirror(ctx, t)

	default:
		return fmt.Errorf("unknown sync action: %q", msg.Action)
	}
}

// ProcessUnsynced mirrors any transactions that still have a pending
// sync flag. This is a backup mechanism in case AMQP messages are lost.
func (w *SyncWorker) ProcessUnsynced(ctx context.Context) error {
	pending, err := w.storage.GetUnsynced(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get unsynced transactions: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing unsynced transactions", "count", len(pending))

	for _, t := range pending {
		if err := w.syncToMirror(ctx, t); err != nil {
			slog.ErrorContext(ctx, "Failed to sync transaction", "id", t.ID, "error", err)
			continue
		}
	}

	return nil
}

func (w *SyncWorker) syncToMirror(ctx context.Context, t core.Transaction) error {
	if err := w.mirror.Upsert(ctx, t); err != nil {
		return fmt.Errorf("upsert transaction %d in mirror: %w", t.ID, err)
	}

	if err := w.storage.MarkSynced(ctx, t.ID); err != nil {
		return fmt.Errorf("mark transaction %d synced: %w", t.ID, err)
	}

	slog.DebugContext(ctx, "Mirrored transaction", "id", t.ID)
	return nil
}

// Run consumes sync messages and periodically reconciles unsynced rows
// until the context ends.
func (w *SyncWorker) Run(ctx context.Context, client *amqp.Client, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return client.ConsumeTransactionSync(ctx, w.HandleSyncMessage)
	})

	g.Go(func() error {
		// Reconcile once at startup to recover from downtime.
		if err := w.ProcessUnsynced(ctx); err != nil {
			slog.ErrorContext(ctx, "Startup reconciliation failed", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.ProcessUnsynced(ctx); err != nil {
					slog.ErrorContext(ctx, "Reconciliation failed", "error", err)
				}
			}
		}
	})

	return g.Wait()
}
