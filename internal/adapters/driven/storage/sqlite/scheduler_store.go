package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// ==================== Scheduler Store ====================

// schedulerStore implements driven.SchedulerStore.
type schedulerStore struct {
	store *Store
}

var _ driven.SchedulerStore = (*schedulerStore)(nil)

// GetTask retrieves a scheduled task by ID.
func (s *schedulerStore) GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, interval_seconds, last_run, next_run, last_error, last_success, enabled
		FROM scheduled_tasks WHERE id = ?
	`, taskID)

	var task domain.ScheduledTask
	var intervalSeconds int64
	var lastRun, nextRun, lastError, lastSuccess sql.NullString
	var enabled int

	if err := row.Scan(&task.ID, &task.Name, &intervalSeconds,
		&lastRun, &nextRun, &lastError, &lastSuccess, &enabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning scheduled task: %w", err)
	}

	task.Interval = time.Duration(intervalSeconds) * time.Second
	task.LastRun = parseNullableTime(lastRun)
	task.NextRun = parseNullableTime(nextRun)
	task.LastError = lastError.String
	task.LastSuccess = parseNullableTime(lastSuccess)
	task.Enabled = enabled == 1

	return &task, nil
}

// SaveTask creates or updates the task by ID.
func (s *schedulerStore) SaveTask(ctx context.Context, task *domain.ScheduledTask) error {
	if task == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scheduled_tasks (id, name, interval_seconds, last_run, next_run, last_error, last_success, enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			interval_seconds = excluded.interval_seconds,
			last_run = excluded.last_run,
			next_run = excluded.next_run,
			last_error = excluded.last_error,
			last_success = excluded.last_success,
			enabled = excluded.enabled
	`, task.ID, task.Name, int64(task.Interval.Seconds()),
		formatNullableTime(task.LastRun), formatNullableTime(task.NextRun),
		nullString(task.LastError), formatNullableTime(task.LastSuccess),
		boolToInt(task.Enabled))

	if err != nil {
		return fmt.Errorf("saving scheduled task: %w", err)
	}
	return nil
}

// RecordResult logs a task execution result.
func (s *schedulerStore) RecordResult(ctx context.Context, result *domain.TaskResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO task_results (task_id, started_at, ended_at, success, error, menus_generated)
		VALUES (?, ?, ?, ?, ?, ?)
	`, result.TaskID,
		formatTime(result.StartedAt),
		formatTime(result.EndedAt),
		boolToInt(result.Success),
		nullString(result.Error),
		result.MenusGenerated)

	if err != nil {
		return fmt.Errorf("recording task result: %w", err)
	}
	return nil
}

// GetTaskHistory returns recent results for a task, most recent first.
func (s *schedulerStore) GetTaskHistory(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT task_id, started_at, ended_at, success, error, menus_generated
		FROM task_results
		WHERE task_id = ?
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, taskID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying task history: %w", err)
	}
	defer rows.Close()

	var results []domain.TaskResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var result domain.TaskResult
		var startedAt, endedAt string
		var success int
		var errMsg sql.NullString

		if err := rows.Scan(&result.TaskID, &startedAt, &endedAt,
			&success, &errMsg, &result.MenusGenerated); err != nil {
			return nil, fmt.Errorf("scanning task result: %w", err)
		}

		result.StartedAt = parseTime(startedAt)
		result.EndedAt = parseTime(endedAt)
		result.Success = success == 1
		result.Error = errMsg.String
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task history: %w", err)
	}

	return results, nil
}

// PruneHistory keeps only the most recent keep results per task.
func (s *schedulerStore) PruneHistory(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM task_results
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY task_id ORDER BY started_at DESC, id DESC) AS rn
				FROM task_results
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning task history: %w", err)
	}
	return nil
}
