package engine_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/application/engine"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Simulation.EndYear = cfg.Simulation.StartYear + 5
	cfg.Simulation.SaveInterval = 0
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngine_SameSeedReplaysIdentically(t *testing.T) {
	run := func() *domain.RunResult {
		eng, err := engine.New(testConfig(t), "baseline", 42, quietLogger())
		require.NoError(t, err)
		res, err := eng.Run(context.Background())
		require.NoError(t, err)
		return res
	}

	// RunID and timestamp differ per run; the simulated years must not.
	assert.Equal(t, run().Years, run().Years)
}

func TestEngine_UnknownScenarioFailsConstruction(t *testing.T) {
	_, err := engine.New(testConfig(t), "no-such-scenario", 1, quietLogger())
	assert.ErrorContains(t, err, "unknown scenario")
}

func TestEngine_CancellationStopsBetweenYears(t *testing.T) {
	eng, err := engine.New(testConfig(t), "baseline", 7, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_EveryModelReportsAnOutcome(t *testing.T) {
	cfg := testConfig(t)
	eng, err := engine.New(cfg, "baseline", 11, quietLogger())
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Years, 6)

	wantSteps := 10 + len(cfg.Sectors) + len(cfg.Imports)
	for _, year := range res.Years {
		assert.Len(t, year.Outcomes, wantSteps)
		assert.False(t, year.Failed())
		for _, o := range year.Outcomes {
			assert.Equal(t, domain.StepOK, o.Status)
		}
	}
}

func TestEngine_PopulatesEverySectorAndCategory(t *testing.T) {
	cfg := testConfig(t)
	eng, err := engine.New(cfg, "baseline", 3, quietLogger())
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	final, ok := res.FinalYear()
	require.True(t, ok)
	for id := range cfg.Sectors {
		require.Contains(t, final.Exports, id)
		assert.Greater(t, final.Exports[id].ExportVolume, 0.0)
	}
	for id := range cfg.Imports {
		require.Contains(t, final.Imports, id)
		assert.Greater(t, final.Imports[id].ImportVolume, 0.0)
	}
}

func TestEngine_AggregatesAreInternallyConsistent(t *testing.T) {
	eng, err := engine.New(testConfig(t), "baseline", 5, quietLogger())
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	for _, year := range res.Years {
		agg := year.Aggregates
		assert.InDelta(t, year.TotalExports(), agg.TotalExports, 1e-9)
		assert.InDelta(t, agg.TotalExports-agg.TotalImports, agg.TradeBalance, 1e-9)
		assert.InDelta(t, (agg.TotalExports+agg.TotalImports)/agg.GDP, agg.TradeOpenness, 1e-9)
		assert.Greater(t, agg.ExchangeRate, 0.0)
		assert.Greater(t, agg.ServiceExports, 0.0)
		assert.Greater(t, agg.Diversification, 0.0)
		assert.LessOrEqual(t, agg.Diversification, 1.0)
	}
}

func TestEngine_SnapshotFiresOnSaveInterval(t *testing.T) {
	cfg := testConfig(t)
	cfg.Simulation.SaveInterval = 2

	var lengths []int
	eng, err := engine.New(cfg, "baseline", 9, quietLogger(),
		engine.WithSnapshot(func(partial *domain.RunResult) {
			lengths = append(lengths, len(partial.Years))
		}))
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, lengths)
}

func TestEngine_MetadataRecordsTheRunWindow(t *testing.T) {
	cfg := testConfig(t)
	eng, err := engine.New(cfg, "baseline", 13, quietLogger())
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	meta := res.Metadata
	assert.NotEmpty(t, meta.RunID)
	assert.Equal(t, "baseline", meta.Scenario)
	assert.Equal(t, cfg.Simulation.StartYear, meta.StartYear)
	assert.Equal(t, cfg.Simulation.EndYear, meta.EndYear)
	assert.Equal(t, uint64(13), meta.Seed)
	assert.False(t, meta.CreatedAt.IsZero())
	assert.Equal(t, meta.EndYear-meta.StartYear+1, len(res.Years))
}
