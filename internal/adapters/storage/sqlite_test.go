package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nayeemz/bdtradesim/internal/adapters/storage"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "tradesim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(id, scenario string, createdAt time.Time) *domain.RunResult {
	run := &domain.RunResult{
		Metadata: domain.RunMetadata{
			RunID:     id,
			Scenario:  scenario,
			StartYear: 2025,
			EndYear:   2027,
			Seed:      42,
			CreatedAt: createdAt,
		},
	}
	for i, year := 0, 2025; year <= 2027; i, year = i+1, year+1 {
		exports := 50000 * (1 + 0.07*float64(i))
		imports := 60000 * (1 + 0.06*float64(i))
		gdp := 350000 * (1 + 0.06*float64(i))
		run.Years = append(run.Years, domain.YearRecord{
			Year: year,
			Exports: map[string]domain.SectorResult{
				"rmg": {Sector: "rmg", Year: year, ExportVolume: exports},
			},
			Imports: map[string]domain.ImportResult{
				"industrial_inputs": {Category: "industrial_inputs", Year: year, ImportVolume: imports},
			},
			Aggregates: domain.AggregateMetrics{
				TotalExports:    exports,
				TotalImports:    imports,
				TradeBalance:    exports - imports,
				GDP:             gdp,
				TradeOpenness:   (exports + imports) / gdp,
				ExchangeRate:    110 + 3*float64(i),
				Diversification: 0.42,
			},
		})
	}
	return run
}

func TestSQLiteStore_SaveAndGetRun(t *testing.T) {
	store := openStore(t)
	created := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	run := sampleRun("run-1", "baseline", created)

	require.NoError(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "baseline", got.Scenario)
	assert.Equal(t, 2025, got.StartYear)
	assert.Equal(t, 2027, got.EndYear)
	assert.Equal(t, uint64(42), got.Seed)
	assert.True(t, created.Equal(got.CreatedAt), "created_at survived the roundtrip")
	assert.InDelta(t, 50000*1.14, got.FinalExports, 1e-6)
	assert.InDelta(t, 350000*1.12, got.FinalGDP, 1e-6)
}

func TestSQLiteStore_GetRunNotFound(t *testing.T) {
	store := openStore(t)

	_, err := store.GetRun(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestSQLiteStore_ListRunsNewestFirst(t *testing.T) {
	store := openStore(t)
	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveRun(context.Background(), sampleRun("run-old", "baseline", base)))
	require.NoError(t, store.SaveRun(context.Background(), sampleRun("run-new", "optimistic", base.Add(time.Hour))))

	runs, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)

	limited, err := store.ListRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-new", limited[0].ID)
}

func TestSQLiteStore_YearMetricsOrderedByYear(t *testing.T) {
	store := openStore(t)
	run := sampleRun("run-1", "baseline", time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveRun(context.Background(), run))

	metrics, err := store.YearMetrics(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, metrics, 3)

	for i, m := range metrics {
		assert.Equal(t, "run-1", m.RunID)
		assert.Equal(t, 2025+i, m.Year)
		assert.InDelta(t, run.Years[i].Aggregates.TotalExports, m.Exports, 1e-9)
		assert.InDelta(t, run.Years[i].Aggregates.ExchangeRate, m.ExchangeRate, 1e-9)
		assert.InDelta(t, 0.42, m.Diversification, 1e-9)
	}
}

func TestSQLiteStore_ResaveReplacesRows(t *testing.T) {
	store := openStore(t)
	created := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	run := sampleRun("run-1", "baseline", created)
	require.NoError(t, store.SaveRun(context.Background(), run))

	run.Metadata.Scenario = "pessimistic"
	require.NoError(t, store.SaveRun(context.Background(), run))

	runs, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "pessimistic", runs[0].Scenario)

	metrics, err := store.YearMetrics(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Len(t, metrics, 3)
}

func TestSQLiteStore_SaveRunWithoutYearsFails(t *testing.T) {
	store := openStore(t)
	run := &domain.RunResult{Metadata: domain.RunMetadata{RunID: "empty"}}

	err := store.SaveRun(context.Background(), run)
	assert.ErrorContains(t, err, "no years")
}
