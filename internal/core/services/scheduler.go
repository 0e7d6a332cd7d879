package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.Scheduler = (*Scheduler)(nil)

// historyRetention is the number of results kept per task.
const historyRetention = 100

// Scheduler generates upcoming menus in the background so they are ready
// before they are asked for. It has no external control API beyond
// Start, Stop and RunOnce.
type Scheduler struct {
	settings domain.SchedulerSettings
	userID   string
	store    driven.SchedulerStore
	menus    driving.MenuService

	// tick is how often due tasks are checked.
	tick time.Duration
	now  func() time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler that pre-generates menus for userID.
func NewScheduler(
	settings domain.SchedulerSettings,
	userID string,
	store driven.SchedulerStore,
	menus driving.MenuService,
) *Scheduler {
	return &Scheduler{
		settings: settings,
		userID:   userID,
		store:    store,
		menus:    menus,
		tick:     time.Minute,
		now:      time.Now,
	}
}

// Start runs the scheduler loop. It blocks until Stop is called or ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.store == nil || s.menus == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	task, err := s.ensureTask(ctx)
	if err != nil {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		logger.Error("scheduler: failed to initialise task: %v", err)
		return err
	}
	logger.Info("Scheduler started: every %s, %d days ahead", task.Interval, s.settings.LookaheadDays)

	s.runIfDue(ctx, task)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			s.runIfDue(ctx, task)
		}
	}
}

// Stop shuts the loop down and waits for a run in progress.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

// RunOnce generates any missing menus in the lookahead window immediately
// and records the result. A run that fails part way still counts the menus
// it created.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.TaskResult, error) {
	if s.store == nil || s.menus == nil {
		return nil, domain.ErrNotImplemented
	}
	task, err := s.ensureTask(ctx)
	if err != nil {
		return nil, err
	}
	result := s.execute(ctx, task)
	if !result.Success {
		return result, errors.New(result.Error)
	}
	return result, nil
}

// SetUser changes the user menus are pre-generated for. It takes effect
// from the next run.
func (s *Scheduler) SetUser(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

func (s *Scheduler) user() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// History returns recent pre-generation results, most recent first.
func (s *Scheduler) History(ctx context.Context, limit int) ([]domain.TaskResult, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetTaskHistory(ctx, domain.TaskIDMenuPregeneration, limit)
}

// ensureTask loads the task, creating it or applying a changed interval.
func (s *Scheduler) ensureTask(ctx context.Context) (*domain.ScheduledTask, error) {
	task, err := s.store.GetTask(ctx, domain.TaskIDMenuPregeneration)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		task = &domain.ScheduledTask{
			ID:       domain.TaskIDMenuPregeneration,
			Name:     "Menu Pre-generation",
			Interval: s.settings.Interval,
		}
	case err != nil:
		return nil, fmt.Errorf("get task: %w", err)
	case task.Interval != s.settings.Interval:
		task.Interval = s.settings.Interval
		task.NextRun = s.now().Add(task.Interval)
	}
	task.Enabled = true

	if err := s.store.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return task, nil
}

// runIfDue executes task when due. The run is registered with wg under mu
// so Stop never waits concurrently with an Add.
func (s *Scheduler) runIfDue(ctx context.Context, task *domain.ScheduledTask) {
	if !task.IsDue(s.now()) {
		return
	}
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()
	s.execute(ctx, task)
}

// execute runs one pre-generation pass and persists task state.
func (s *Scheduler) execute(ctx context.Context, task *domain.ScheduledTask) *domain.TaskResult {
	result := &domain.TaskResult{TaskID: task.ID, StartedAt: s.now()}
	generated, err := s.pregenerate(ctx)
	result.MenusGenerated = generated
	result.EndedAt = s.now()

	if err != nil {
		result.Error = err.Error()
		task.LastError = err.Error()
		logger.Warn("Pre-generation failed after %d menus: %v", generated, err)
	} else {
		result.Success = true
		task.LastError = ""
		task.LastSuccess = result.EndedAt
		logger.Info("Pre-generated %d menus", generated)
	}
	task.LastRun = result.StartedAt
	task.NextRun = result.EndedAt.Add(task.Interval)

	if err := s.store.SaveTask(ctx, task); err != nil {
		logger.Error("scheduler: failed to save task %s: %v", task.ID, err)
	}
	if err := s.store.RecordResult(ctx, result); err != nil {
		logger.Error("scheduler: failed to record result for %s: %v", task.ID, err)
	}
	if err := s.store.PruneHistory(ctx, historyRetention); err != nil {
		logger.Error("scheduler: failed to prune history: %v", err)
	}
	return result
}

// pregenerate creates menus for each day in the window that has none,
// stopping at the first failure.
func (s *Scheduler) pregenerate(ctx context.Context) (int, error) {
	today := calendarDay(s.now())
	userID := s.user()
	generated := 0
	for i := 0; i < s.settings.LookaheadDays; i++ {
		if err := ctx.Err(); err != nil {
			return generated, err
		}
		date := today.AddDate(0, 0, i)
		_, err := s.menus.Get(ctx, userID, date)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return generated, fmt.Errorf("get menu %s: %w", domain.FormatDate(date), err)
		}
		if _, err := s.menus.Generate(ctx, userID, date); err != nil {
			return generated, fmt.Errorf("generate menu %s: %w", domain.FormatDate(date), err)
		}
		generated++
	}
	return generated, nil
}
