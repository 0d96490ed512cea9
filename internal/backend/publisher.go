package backend

import (
	"context"
	"log/slog"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/storage"
)

// PublishingStore wraps the SQLite repository and emits a sync message
// after every successful mutation. Publish failures are logged and never
// fail the request; the record is already persisted locally and the
// worker reconciles unsynced rows on a timer.
type PublishingStore struct {
	repo       *storage.SQLiteRepository
	amqpClient *amqp.Client
	logger     *slog.Logger
}

func NewPublishingStore(repo *storage.SQLiteRepository, amqpClient *amqp.Client, logger *slog.Logger) *PublishingStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublishingStore{
		repo:       repo,
		amqpClient: amqpClient,
		logger:     logger,
	}
}

func (s *PublishingStore) GetAll(ctx context.Context) ([]core.Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *PublishingStore) Save(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	saved, err := s.repo.Save(ctx, t)
	if err != nil {
		return core.Transaction{}, err
	}

	s.publish(ctx, saved.ID, amqp.ActionUpsert)
	return saved, nil
}

func (s *PublishingStore) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, id, amqp.ActionDelete)
	return nil
}

func (s *PublishingStore) ToggleStatus(ctx context.Context, id int64) error {
	if err := s.repo.ToggleStatus(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, id, amqp.ActionUpsert)
	return nil
}

func (s *PublishingStore) PortfolioValue(ctx context.Context) (core.Money, error) {
	return s.repo.PortfolioValue(ctx)
}

func (s *PublishingStore) SetPortfolioValue(ctx context.Context, v core.Money) error {
	return s.repo.SetPortfolioValue(ctx, v)
}

func (s *PublishingStore) publish(ctx context.Context, id int64, action amqp.SyncAction) {
	if err := s.amqpClient.PublishTransactionSync(ctx, id, action); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish sync message",
			"id", id,
			"action", action,
			"error", err)
	}
}
