package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nayeemz/bdtradesim/internal/domain"
)

// JSON implements ports.Exporter by writing the full run, metadata plus every
// year record, as one indented JSON document.
type JSON struct {
	dir string
}

// NewJSON creates an exporter that writes into dir, creating it on demand.
func NewJSON(dir string) *JSON {
	return &JSON{dir: dir}
}

// Export writes the run as simulation_results_<scenario>.json and returns
// the path. Re-running a scenario overwrites its previous results file.
func (e *JSON) Export(run *domain.RunResult) (string, error) {
	path := filepath.Join(e.dir, fileName(run, "json"))
	if err := e.write(path, run); err != nil {
		return "", err
	}
	return path, nil
}

// ExportComparison writes several runs, one per scenario, keyed by scenario
// name, as scenario_comparison_<start>_<end>.json.
func (e *JSON) ExportComparison(runs []*domain.RunResult) (string, error) {
	if len(runs) == 0 {
		return "", fmt.Errorf("export.JSON: no runs to compare")
	}

	byScenario := make(map[string]*domain.RunResult, len(runs))
	for _, run := range runs {
		byScenario[run.Metadata.Scenario] = run
	}

	meta := runs[0].Metadata
	name := fmt.Sprintf("scenario_comparison_%d_%d.json", meta.StartYear, meta.EndYear)
	path := filepath.Join(e.dir, name)
	if err := e.write(path, byScenario); err != nil {
		return "", err
	}
	return path, nil
}

func (e *JSON) write(path string, v any) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("export.JSON: create dir %q: %w", e.dir, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export.JSON: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export.JSON: write %q: %w", path, err)
	}
	return nil
}

// fileName builds "simulation_results_<scenario>.<ext>".
func fileName(run *domain.RunResult, ext string) string {
	return fmt.Sprintf("simulation_results_%s.%s", run.Metadata.Scenario, ext)
}
