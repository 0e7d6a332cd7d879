package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure SchedulerStore implements the interface.
var _ driven.SchedulerStore = (*SchedulerStore)(nil)

// SchedulerStore is an in-memory implementation of driven.SchedulerStore.
type SchedulerStore struct {
	mu      sync.RWMutex
	tasks   map[string]domain.ScheduledTask
	results []domain.TaskResult
}

// NewSchedulerStore creates a new in-memory scheduler store.
func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{tasks: make(map[string]domain.ScheduledTask)}
}

// GetTask retrieves a task by ID.
func (s *SchedulerStore) GetTask(_ context.Context, taskID string) (*domain.ScheduledTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

// SaveTask creates or updates a task.
func (s *SchedulerStore) SaveTask(_ context.Context, task *domain.ScheduledTask) error {
	if task == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

// RecordResult appends a result.
func (s *SchedulerStore) RecordResult(_ context.Context, result *domain.TaskResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
	return nil
}

// GetTaskHistory returns up to limit results for taskID, most recent first.
func (s *SchedulerStore) GetTaskHistory(_ context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.TaskResult
	for i := len(s.results) - 1; i >= 0 && len(out) < limit; i-- {
		if s.results[i].TaskID == taskID {
			out = append(out, s.results[i])
		}
	}
	return out, nil
}

// PruneHistory keeps the most recent keep results per task.
func (s *SchedulerStore) PruneHistory(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(s.results, func(i, j int) bool {
		return s.results[i].StartedAt.Before(s.results[j].StartedAt)
	})
	seen := make(map[string]int)
	kept := make([]domain.TaskResult, 0, len(s.results))
	for i := len(s.results) - 1; i >= 0; i-- {
		r := s.results[i]
		if seen[r.TaskID] < keep {
			seen[r.TaskID]++
			kept = append(kept, r)
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	s.results = kept
	return nil
}
