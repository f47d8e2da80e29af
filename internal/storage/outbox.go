//go:generate mockgen -source ./outbox.go -destination=./mocks/outbox.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/repository"
)

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
