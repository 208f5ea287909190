package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implements ports.Reporter with formatted tables on stdout.
type Console struct {
	out     io.Writer
	verbose bool // per-year table instead of the summary block
}

// NewConsole creates a reporter that writes to stdout.
func NewConsole(verbose bool) *Console {
	return &Console{out: os.Stdout, verbose: verbose}
}

// NewConsoleWriter creates a reporter for tests.
func NewConsoleWriter(w io.Writer, verbose bool) *Console {
	return &Console{out: w, verbose: verbose}
}

// Report renders one run: the headline trajectory plus, in verbose mode, a
// row per simulated year.
func (c *Console) Report(run *domain.RunResult) error {
	final, ok := run.FinalYear()
	if !ok {
		fmt.Fprintln(c.out, "run produced no years")
		return nil
	}
	first := run.Years[0]
	years := len(run.Years)

	meta := run.Metadata
	fmt.Fprintf(c.out, "Scenario %q, %d-%d, seed %d\n",
		meta.Scenario, meta.StartYear, meta.EndYear, meta.Seed)

	fmt.Fprintf(c.out, "Exports:  %s -> %s (%.1f%%/yr)\n",
		fmtUSD(first.Aggregates.TotalExports), fmtUSD(final.Aggregates.TotalExports),
		cagr(first.Aggregates.TotalExports, final.Aggregates.TotalExports, years)*100)
	fmt.Fprintf(c.out, "Imports:  %s -> %s (%.1f%%/yr)\n",
		fmtUSD(first.Aggregates.TotalImports), fmtUSD(final.Aggregates.TotalImports),
		cagr(first.Aggregates.TotalImports, final.Aggregates.TotalImports, years)*100)
	fmt.Fprintf(c.out, "Services: %s -> %s\n",
		fmtUSD(first.Aggregates.ServiceExports), fmtUSD(final.Aggregates.ServiceExports))
	fmt.Fprintf(c.out, "GDP:      %s -> %s | openness %.2f -> %.2f | BDT/USD %.0f -> %.0f\n",
		fmtUSD(first.Aggregates.GDP), fmtUSD(final.Aggregates.GDP),
		first.Aggregates.TradeOpenness, final.Aggregates.TradeOpenness,
		first.Aggregates.ExchangeRate, final.Aggregates.ExchangeRate)
	fmt.Fprintf(c.out, "Export concentration (HHI): %.3f -> %.3f\n",
		first.Aggregates.Diversification, final.Aggregates.Diversification)

	c.printSectors(final)

	if c.verbose {
		c.printYears(run)
	}
	if failed := failedYears(run); len(failed) > 0 {
		fmt.Fprintf(c.out, "WARNING: model failures in years %v\n", failed)
	}
	return nil
}

// Compare renders one row per run, assuming one run per scenario.
func (c *Console) Compare(runs []*domain.RunResult) error {
	table := tablewriter.NewWriter(c.out)
	table.Header("Scenario", "Exports", "Imports", "Balance", "GDP", "Openness", "BDT/USD", "HHI")

	for _, run := range runs {
		final, ok := run.FinalYear()
		if !ok {
			continue
		}
		agg := final.Aggregates
		table.Append(
			run.Metadata.Scenario,
			fmtUSD(agg.TotalExports),
			fmtUSD(agg.TotalImports),
			fmtUSD(agg.TradeBalance),
			fmtUSD(agg.GDP),
			fmt.Sprintf("%.2f", agg.TradeOpenness),
			fmt.Sprintf("%.0f", agg.ExchangeRate),
			fmt.Sprintf("%.3f", agg.Diversification),
		)
	}
	table.Render()
	return nil
}

// printSectors lists the final year's export sectors, largest first.
func (c *Console) printSectors(final domain.YearRecord) {
	ids := make([]string, 0, len(final.Exports))
	for id := range final.Exports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return final.Exports[ids[i]].ExportVolume > final.Exports[ids[j]].ExportVolume
	})

	table := tablewriter.NewWriter(c.out)
	table.Header("Sector", "Exports", "Growth", "Share", "Competitiveness")
	for _, id := range ids {
		s := final.Exports[id]
		table.Append(
			id,
			fmtUSD(s.ExportVolume),
			fmt.Sprintf("%+.1f%%", s.GrowthRate*100),
			fmt.Sprintf("%.1f%%", s.GlobalMarketShare*100),
			fmt.Sprintf("%.2f", s.Competitiveness),
		)
	}
	table.Render()
}

// printYears renders the per-year trajectory table.
func (c *Console) printYears(run *domain.RunResult) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Year", "Exports", "Imports", "Balance", "Services", "GDP", "BDT/USD")
	for _, y := range run.Years {
		agg := y.Aggregates
		table.Append(
			fmt.Sprintf("%d", y.Year),
			fmtUSD(agg.TotalExports),
			fmtUSD(agg.TotalImports),
			fmtUSD(agg.TradeBalance),
			fmtUSD(agg.ServiceExports),
			fmtUSD(agg.GDP),
			fmt.Sprintf("%.0f", agg.ExchangeRate),
		)
	}
	table.Render()
}

func failedYears(run *domain.RunResult) []int {
	var years []int
	for _, y := range run.Years {
		if y.Failed() {
			years = append(years, y.Year)
		}
	}
	return years
}

// fmtUSD renders a million-USD amount as $X.XB / $X.XM.
func fmtUSD(millions float64) string {
	abs := math.Abs(millions)
	switch {
	case abs >= 1000:
		return fmt.Sprintf("$%.1fB", millions/1000)
	default:
		return fmt.Sprintf("$%.0fM", millions)
	}
}

// cagr is the compound annual growth rate across n yearly observations.
func cagr(first, last float64, n int) float64 {
	if first <= 0 || n < 2 {
		return 0
	}
	return math.Pow(last/first, 1/float64(n-1)) - 1
}
