package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesBaseline(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Simulation.StartYear)
	assert.Equal(t, 2050, cfg.Simulation.EndYear)
	assert.Equal(t, "baseline", cfg.Simulation.Scenario)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Len(t, cfg.Sectors, 6)
	assert.Len(t, cfg.Imports, 3)
	assert.Len(t, cfg.Logistics.Ports, 3)
	assert.InDelta(t, 110.0, cfg.ExchangeRate.InitialRate, 1e-9)
	assert.InDelta(t, 35000.0, cfg.Sectors["rmg"].InitialVolume, 1e-9)
	assert.Equal(t, 2026, cfg.TradePolicy.LDCGraduation.Year)
}

func TestLoad_YAMLOverridesBaseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := `
simulation:
  start_year: 2025
  end_year: 2030
  scenario: global_slowdown
  seed: 7
exchange_rate:
  initial_rate: 118.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2030, cfg.Simulation.EndYear)
	assert.Equal(t, "global_slowdown", cfg.Simulation.Scenario)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.InDelta(t, 118.5, cfg.ExchangeRate.InitialRate, 1e-9)
	// untouched sections keep baseline values
	assert.InDelta(t, 0.03, cfg.ExchangeRate.AnnualDepreciation, 1e-9)
	assert.Len(t, cfg.Sectors, 6)
}

func TestLoad_InvalidYearsFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := `
simulation:
  start_year: 2030
  end_year: 2025
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_year")
}

func TestLoad_UnknownScenarioFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := `
simulation:
  scenario: moonshot
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestScenario_MultipliersDefaultToOne(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	sc := cfg.Scenario()
	assert.Equal(t, 1.0, sc.ExportGrowth)
	assert.Equal(t, 1.0, sc.GlobalDemand)
	assert.Equal(t, 1.0, sc.ComplianceCost)

	slow, ok := cfg.ScenarioByName("global_slowdown")
	require.True(t, ok)
	assert.Equal(t, 0.7, slow.GlobalDemand)
	assert.Equal(t, 0.6, slow.ExportGrowth)
	assert.Equal(t, 1.0, slow.DigitalTrade) // unset multiplier normalized to 1

	_, ok = cfg.ScenarioByName("moonshot")
	assert.False(t, ok)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRADESIM_SCENARIO", "accelerated_growth")
	t.Setenv("TRADESIM_SEED", "99")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "accelerated_growth", cfg.Simulation.Scenario)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
}
