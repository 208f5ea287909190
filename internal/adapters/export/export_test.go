package export_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nayeemz/bdtradesim/internal/adapters/export"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *domain.RunResult {
	run := &domain.RunResult{
		Metadata: domain.RunMetadata{
			RunID:     "0a1b2c3d-feed-beef-cafe-000000000001",
			Scenario:  "baseline",
			StartYear: 2025,
			EndYear:   2026,
			Seed:      42,
			CreatedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		},
	}
	for i, year := 0, 2025; year <= 2026; i, year = i+1, year+1 {
		run.Years = append(run.Years, domain.YearRecord{
			Year: year,
			Exports: map[string]domain.SectorResult{
				"rmg": {Sector: "rmg", Year: year, ExportVolume: 38000 + 2000*float64(i)},
			},
			Aggregates: domain.AggregateMetrics{
				TotalExports: 38000 + 2000*float64(i),
				TotalImports: 45000,
				GDP:          350000,
				ExchangeRate: 110,
			},
		})
	}
	return run
}

func TestJSON_ExportRoundtrips(t *testing.T) {
	dir := t.TempDir()
	run := sampleRun()

	path, err := export.NewJSON(dir).Export(run)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "simulation_results_baseline.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.RunResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, run.Metadata, got.Metadata)
	require.Len(t, got.Years, 2)
	assert.Equal(t, run.Years[0].Exports["rmg"], got.Years[0].Exports["rmg"])
	assert.Equal(t, run.Years[1].Aggregates, got.Years[1].Aggregates)
}

func TestJSON_ExportCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	path, err := export.NewJSON(dir).Export(sampleRun())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestJSON_ComparisonKeysRunsByScenario(t *testing.T) {
	dir := t.TempDir()

	optimistic := sampleRun()
	optimistic.Metadata.Scenario = "optimistic"
	runs := []*domain.RunResult{sampleRun(), optimistic}

	path, err := export.NewJSON(dir).ExportComparison(runs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scenario_comparison_2025_2026.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]domain.RunResult
	require.NoError(t, json.Unmarshal(data, &got))
	require.Contains(t, got, "baseline")
	require.Contains(t, got, "optimistic")
	assert.Len(t, got["baseline"].Years, 2)
}

func TestCSV_ExportWritesOneRowPerYear(t *testing.T) {
	dir := t.TempDir()

	path, err := export.NewCSV(dir).Export(sampleRun())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "simulation_results_baseline.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 years

	assert.Equal(t, "year", rows[0][0])
	assert.Equal(t, "total_exports", rows[0][1])
	assert.Equal(t, "2025", rows[1][0])
	assert.Equal(t, "38000.0000", rows[1][1])
	assert.Equal(t, "2026", rows[2][0])
}
