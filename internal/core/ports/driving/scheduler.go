package driving

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// Scheduler pre-generates upcoming menus in the background.
type Scheduler interface {
	// Start begins running scheduled tasks.
	// Blocks until context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops all running tasks.
	Stop() error

	// RunOnce runs pre-generation immediately and records the result.
	RunOnce(ctx context.Context) (*domain.TaskResult, error)

	// SetUser selects the user whose menus are pre-generated.
	SetUser(userID string)

	// History returns recent results, most recent first.
	History(ctx context.Context, limit int) ([]domain.TaskResult, error)
}
