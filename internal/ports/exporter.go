package ports

import "github.com/nayeemz/bdtradesim/internal/domain"

// Exporter writes finished runs to files for downstream analysis.
type Exporter interface {
	// Export writes the run and returns the path it was written to.
	Export(run *domain.RunResult) (string, error)
}
