package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nayeemz/bdtradesim/internal/domain"
)

// CSV implements ports.Exporter by writing one row per simulated year with
// the headline aggregates, for spreadsheet and notebook analysis.
type CSV struct {
	dir string
}

// NewCSV creates an exporter that writes into dir, creating it on demand.
func NewCSV(dir string) *CSV {
	return &CSV{dir: dir}
}

// Export writes the run's yearly aggregates and returns the file path.
func (e *CSV) Export(run *domain.RunResult) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export.CSV: create dir %q: %w", e.dir, err)
	}

	path := filepath.Join(e.dir, fileName(run, "csv"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export.CSV: create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"year", "total_exports", "total_imports", "service_exports",
		"trade_balance", "gdp", "trade_openness", "export_to_gdp",
		"import_to_gdp", "exchange_rate", "diversification",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("export.CSV: write header: %w", err)
	}

	for _, y := range run.Years {
		agg := y.Aggregates
		row := []string{
			strconv.Itoa(y.Year),
			f64(agg.TotalExports), f64(agg.TotalImports), f64(agg.ServiceExports),
			f64(agg.TradeBalance), f64(agg.GDP), f64(agg.TradeOpenness),
			f64(agg.ExportToGDP), f64(agg.ImportToGDP), f64(agg.ExchangeRate),
			f64(agg.Diversification),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("export.CSV: write year %d: %w", y.Year, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export.CSV: flush: %w", err)
	}
	return path, nil
}

func f64(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
