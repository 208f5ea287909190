package ports

import (
	"context"

	"github.com/nayeemz/bdtradesim/internal/domain"
)

// RunStore persists completed simulation runs and serves them back to the
// CLI and the HTTP API.
type RunStore interface {
	// SaveRun persists a run's summary and its per-year metric rows.
	// Saving the same run ID again overwrites the previous rows.
	SaveRun(ctx context.Context, run *domain.RunResult) error

	// ListRuns returns stored run summaries, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// GetRun returns one run's summary by ID.
	GetRun(ctx context.Context, id string) (domain.RunSummary, error)

	// YearMetrics returns the run's per-year rows ordered by year.
	YearMetrics(ctx context.Context, id string) ([]domain.YearMetrics, error)

	// Close releases the underlying database.
	Close() error
}
