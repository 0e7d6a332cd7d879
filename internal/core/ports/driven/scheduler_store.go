package driven

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// SchedulerStore persists scheduler state so runs survive restarts.
type SchedulerStore interface {
	// GetTask retrieves a scheduled task by ID.
	// Returns domain.ErrNotFound if the task has never been saved.
	GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error)

	// SaveTask creates or updates a task by ID.
	SaveTask(ctx context.Context, task *domain.ScheduledTask) error

	// RecordResult logs a task execution result.
	RecordResult(ctx context.Context, result *domain.TaskResult) error

	// GetTaskHistory returns recent results for a task, most recent first.
	GetTaskHistory(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error)

	// PruneHistory keeps only the most recent keep results per task.
	PruneHistory(ctx context.Context, keep int) error
}
