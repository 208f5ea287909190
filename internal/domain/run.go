package domain

import "time"

// StepStatus tags the outcome of one model step inside a simulated year.
type StepStatus string

const (
	StepOK     StepStatus = "ok"
	StepFailed StepStatus = "failed"
)

// Outcome records whether a model produced a usable result for a year.
// A failed model leaves its slot in the YearRecord zero-valued; consumers
// can check Outcomes instead of guessing from suspicious zeros.
type Outcome struct {
	Model  string     `json:"model"`
	Status StepStatus `json:"status"`
	Err    string     `json:"error,omitempty"`
}

// RunMetadata identifies a simulation run.
type RunMetadata struct {
	RunID     string    `json:"run_id"`
	Scenario  string    `json:"scenario"`
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year"`
	Seed      uint64    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// AggregateMetrics is the per-year headline summary derived from the model
// outputs. Monetary values are million USD.
type AggregateMetrics struct {
	TotalExports    float64 `json:"total_exports"`
	TotalImports    float64 `json:"total_imports"`
	ServiceExports  float64 `json:"service_exports"`
	TradeBalance    float64 `json:"trade_balance"`
	GDP             float64 `json:"gdp"`
	TradeOpenness   float64 `json:"trade_openness"`
	ExportToGDP     float64 `json:"export_to_gdp"`
	ImportToGDP     float64 `json:"import_to_gdp"`
	ExchangeRate    float64 `json:"exchange_rate"`
	Diversification float64 `json:"diversification"`
}

// YearRecord is one simulated year: every model's snapshot plus aggregates.
// Records are append-only; the engine never rewrites a finished year.
type YearRecord struct {
	Year         int                     `json:"year"`
	GlobalMarket GlobalMarketResult      `json:"global_market"`
	Geopolitics  GeopoliticalResult      `json:"geopolitics"`
	Investment   InvestmentResult        `json:"investment"`
	TradePolicy  TradePolicyResult       `json:"trade_policy"`
	Logistics    LogisticsResult         `json:"logistics"`
	ExchangeRate ExchangeRateResult      `json:"exchange_rate"`
	Compliance   ComplianceResult        `json:"compliance"`
	Structural   StructuralResult        `json:"structural_transformation"`
	Digital      DigitalTradeResult      `json:"digital_trade"`
	Services     ServicesTradeResult     `json:"services_trade"`
	Exports      map[string]SectorResult `json:"exports"`
	Imports      map[string]ImportResult `json:"imports"`
	Aggregates   AggregateMetrics        `json:"aggregate_metrics"`
	Outcomes     []Outcome               `json:"outcomes,omitempty"`
}

// TotalExports sums goods export volumes across sectors, in key order so the
// total is identical between reruns.
func (y YearRecord) TotalExports() float64 {
	total := 0.0
	for _, id := range orderedKeys(y.Exports) {
		total += y.Exports[id].ExportVolume
	}
	return total
}

// TotalImports sums goods import volumes across categories, in key order.
func (y YearRecord) TotalImports() float64 {
	total := 0.0
	for _, id := range orderedKeys(y.Imports) {
		total += y.Imports[id].ImportVolume
	}
	return total
}

// Failed reports whether any model step failed this year.
func (y YearRecord) Failed() bool {
	for _, o := range y.Outcomes {
		if o.Status == StepFailed {
			return true
		}
	}
	return false
}

// RunResult is a complete simulation run: metadata plus one record per year,
// ordered from start year to end year.
type RunResult struct {
	Metadata RunMetadata  `json:"metadata"`
	Years    []YearRecord `json:"yearly_data"`
}

// FinalYear returns the last simulated year record, or false when the run
// produced no years.
func (r *RunResult) FinalYear() (YearRecord, bool) {
	if len(r.Years) == 0 {
		return YearRecord{}, false
	}
	return r.Years[len(r.Years)-1], true
}

// RunSummary is the lightweight listing shape used by storage and the API.
type RunSummary struct {
	ID           string    `json:"id"`
	Scenario     string    `json:"scenario"`
	StartYear    int       `json:"start_year"`
	EndYear      int       `json:"end_year"`
	Seed         uint64    `json:"seed"`
	CreatedAt    time.Time `json:"created_at"`
	FinalExports float64   `json:"final_exports"`
	FinalImports float64   `json:"final_imports"`
	FinalGDP     float64   `json:"final_gdp"`
}

// YearMetrics is the flattened per-year row persisted for time-series queries.
type YearMetrics struct {
	RunID           string  `json:"run_id"`
	Year            int     `json:"year"`
	Exports         float64 `json:"exports"`
	Imports         float64 `json:"imports"`
	GDP             float64 `json:"gdp"`
	TradeBalance    float64 `json:"trade_balance"`
	TradeOpenness   float64 `json:"trade_openness"`
	ExchangeRate    float64 `json:"exchange_rate"`
	Diversification float64 `json:"diversification"`
}
