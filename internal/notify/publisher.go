package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/metrics"
	"github.com/veloria/warranty-portal/internal/repository"
	"github.com/veloria/warranty-portal/internal/storage"
)

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the notification outbox: tasks committed alongside claim
// writes are picked up here and handed to the producer, at least once.
type Publisher struct {
	db             db.DB
	repo           storage.OutboxTaskRepository
	producer       Producer
	config         PublisherConfig
	logger         *zap.Logger
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPublisher(database db.DB, repo storage.OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:             database,
		repo:           repo,
		producer:       producer,
		config:         config,
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("Starting notification outbox publisher")
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("Outbox publisher failed to process batch", zap.Error(err))
			}
		case <-p.shutdownSignal:
			p.logger.Info("Outbox publisher received shutdown signal, stopping")
			return
		case <-ctx.Done():
			p.Shutdown()
			return
		}
	}
}

func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		close(p.shutdownSignal)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("Outbox publisher shutdown complete")
		case <-shutdownCtx.Done():
			p.logger.Warn("Outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("Failed to close producer", zap.Error(err))
		}
	})
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for fetching tasks: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	tasks, err := p.repo.GetProcessableTasks(ctx, p.db, p.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get processable tasks: %w", err)
	}

	if len(tasks) == 0 {
		return tx.Commit(ctx)
	}

	p.logger.Debug("Fetched outbox tasks", zap.Int("count", len(tasks)))

	for _, task := range tasks {
		err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to mark task %s as PROCESSING: %w", task.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction after marking tasks: %w", err)
	}

	for _, task := range tasks {
		select {
		case <-p.shutdownSignal:
			return fmt.Errorf("publisher shutdown during batch processing")
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.processSingleTask(ctx, task); err != nil {
			p.logger.Error("Failed to process outbox task", zap.String("task_id", task.ID.String()), zap.Error(err))
		}
	}

	return nil
}

func (p *Publisher) processSingleTask(ctx context.Context, task *repository.OutboxTask) error {
	key := []byte(task.ID.String())

	err := p.producer.SendMessage(ctx, task.Topic, key, task.Payload)
	if err != nil {
		newAttempts := task.Attempts + 1
		errMsg := err.Error()

		if newAttempts >= p.config.MaxAttempts {
			p.logger.Warn("Outbox task reached max attempts",
				zap.String("task_id", task.ID.String()),
				zap.Int("attempts", newAttempts))
		}

		updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, newAttempts, &errMsg, nil)
		if updateErr != nil {
			return fmt.Errorf("failed to update task status after send failure: %w (send error: %v)", updateErr, err)
		}
		return err
	}

	now := time.Now().UTC()
	if updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now); updateErr != nil {
		return fmt.Errorf("failed to update task status after successful send: %w", updateErr)
	}

	metrics.NotificationsPublishedTotal.Inc()
	return nil
}
