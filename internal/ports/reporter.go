package ports

import "github.com/nayeemz/bdtradesim/internal/domain"

// Reporter presents finished runs to the user. The console implementation
// prints formatted tables.
type Reporter interface {
	// Report renders one run.
	Report(run *domain.RunResult) error

	// Compare renders several runs side by side, one per scenario.
	Compare(runs []*domain.RunResult) error
}
