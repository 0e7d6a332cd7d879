package domain

import "time"

// TaskIDMenuPregeneration identifies the task that generates upcoming menus
// ahead of time.
const TaskIDMenuPregeneration = "menu_pregeneration"

// ScheduledTask represents a recurring background task.
type ScheduledTask struct {
	ID   string
	Name string

	// Interval defines how often the task should run.
	Interval time.Duration

	LastRun time.Time

	// NextRun is when the task should run next. Zero means immediately.
	NextRun time.Time

	// LastError is empty after a successful run.
	LastError string

	LastSuccess time.Time
	Enabled     bool
}

// IsDue reports whether the task should run at now.
func (t *ScheduledTask) IsDue(now time.Time) bool {
	return t.Enabled && !t.NextRun.After(now)
}

// TaskResult is the outcome of one task run.
type TaskResult struct {
	TaskID    string
	StartedAt time.Time
	EndedAt   time.Time
	Success   bool
	Error     string

	// MenusGenerated counts menus created by the run. Dates that already
	// had a menu are not counted.
	MenusGenerated int
}

// Duration returns how long the run took.
func (r *TaskResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// SchedulerSettings configures background menu pre-generation.
type SchedulerSettings struct {
	// Enabled starts the scheduler alongside the MCP server.
	Enabled bool

	// Interval between runs.
	Interval time.Duration

	// LookaheadDays is how many days, starting today, get a menu.
	LookaheadDays int
}

// DefaultSchedulerSettings returns the scheduler defaults: disabled, every
// six hours, one week ahead.
func DefaultSchedulerSettings() SchedulerSettings {
	return SchedulerSettings{
		Enabled:       false,
		Interval:      6 * time.Hour,
		LookaheadDays: 7,
	}
}
