package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/nayeemz/bdtradesim/internal/adapters/report"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(scenario string) *domain.RunResult {
	run := &domain.RunResult{
		Metadata: domain.RunMetadata{
			RunID:     "run-1",
			Scenario:  scenario,
			StartYear: 2025,
			EndYear:   2027,
			Seed:      42,
			CreatedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		},
	}
	for i, year := 0, 2025; year <= 2027; i, year = i+1, year+1 {
		exports := 50000 * (1 + 0.07*float64(i))
		run.Years = append(run.Years, domain.YearRecord{
			Year: year,
			Exports: map[string]domain.SectorResult{
				"rmg":    {Sector: "rmg", Year: year, ExportVolume: exports * 0.8, GrowthRate: 0.07, GlobalMarketShare: 0.065, Competitiveness: 0.7},
				"pharma": {Sector: "pharma", Year: year, ExportVolume: exports * 0.2, GrowthRate: 0.12, GlobalMarketShare: 0.002, Competitiveness: 0.6},
			},
			Aggregates: domain.AggregateMetrics{
				TotalExports:    exports,
				TotalImports:    exports * 1.2,
				ServiceExports:  21000,
				TradeBalance:    -exports * 0.2,
				GDP:             350000,
				TradeOpenness:   0.31,
				ExchangeRate:    110 + 3*float64(i),
				Diversification: 0.42,
			},
		})
	}
	return run
}

func TestConsole_ReportShowsHeadlineAndSectors(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsoleWriter(&buf, false)

	require.NoError(t, c.Report(sampleRun("baseline")))

	out := buf.String()
	assert.Contains(t, out, `Scenario "baseline", 2025-2027, seed 42`)
	assert.Contains(t, out, "Exports:")
	assert.Contains(t, out, "rmg")
	assert.Contains(t, out, "pharma")
	// compact mode: no per-year rows
	assert.NotContains(t, out, "2026")
}

func TestConsole_VerboseReportListsEveryYear(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsoleWriter(&buf, true)

	require.NoError(t, c.Report(sampleRun("baseline")))

	out := buf.String()
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "2026")
	assert.Contains(t, out, "2027")
}

func TestConsole_ReportFlagsFailedYears(t *testing.T) {
	run := sampleRun("baseline")
	run.Years[1].Outcomes = []domain.Outcome{
		{Model: "logistics", Status: domain.StepFailed, Err: "boom"},
	}

	var buf bytes.Buffer
	c := report.NewConsoleWriter(&buf, false)
	require.NoError(t, c.Report(run))

	assert.Contains(t, buf.String(), "WARNING: model failures in years [2026]")
}

func TestConsole_CompareListsOneRowPerScenario(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsoleWriter(&buf, false)

	runs := []*domain.RunResult{sampleRun("baseline"), sampleRun("optimistic")}
	require.NoError(t, c.Compare(runs))

	out := buf.String()
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "optimistic")
	assert.Contains(t, out, "Scenario")
}

func TestConsole_ReportHandlesEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsoleWriter(&buf, false)

	require.NoError(t, c.Report(&domain.RunResult{}))
	assert.Contains(t, buf.String(), "no years")
}
