package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/models"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// centralBankStance is the baseline appetite to defend the taka. It is held
// constant across the run; scenario effects enter through the currency model.
const centralBankStance = 0.6

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithSectorData plugs observed per-sector export values into the structural
// model. Years absent from the source fall back to synthetic growth.
func WithSectorData(source models.SectorDataSource) Option {
	return func(e *Engine) { e.sectorData = source }
}

// WithSnapshot registers a callback invoked with the partial run every
// simulation.save_interval years. The callback must not retain the pointer
// past its return.
func WithSnapshot(fn func(partial *domain.RunResult)) Option {
	return func(e *Engine) { e.snapshot = fn }
}

// Engine orchestrates one simulation run: it steps every model once per year
// in a fixed order and threads each model's output into the inputs of the
// models downstream. All randomness flows through a single seeded generator,
// so a run is fully reproducible from (config, scenario, seed).
type Engine struct {
	cfg      *config.Config
	scenario config.ScenarioConfig
	name     string
	seed     uint64
	log      *slog.Logger
	rng      *sim.Rand

	sectorData models.SectorDataSource
	snapshot   func(*domain.RunResult)

	globalMarket *models.GlobalMarketModel
	geopolitics  *models.GeopoliticsModel
	investment   *models.InvestmentModel
	tradePolicy  *models.TradePolicyModel
	logistics    *models.LogisticsModel
	exchangeRate *models.ExchangeRateModel
	compliance   *models.ComplianceModel
	structural   *models.StructuralModel
	digital      *models.DigitalTradeModel
	services     *models.ServicesTradeModel
	sectors      []*models.ExportSectorModel
	imports      []*models.ImportCategoryModel

	// Cross-year state threaded between models. The currency and logistics
	// models consume last year's flows because this year's are not known yet
	// when they step.
	prevExports     float64
	prevImports     float64
	prevRemittances float64
	prevUnrest      float64
	prevLogCost     float64
	buyerDemands    float64
	dollarIndex     float64
	stability       float64
	bankingHealth   float64
}

// New builds an engine for the named scenario. The same seed against the same
// configuration replays the run year for year.
func New(cfg *config.Config, scenarioName string, seed uint64, logger *slog.Logger, opts ...Option) (*Engine, error) {
	scenario, ok := cfg.ScenarioByName(scenarioName)
	if !ok {
		return nil, fmt.Errorf("engine.New: unknown scenario %q", scenarioName)
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		cfg:      cfg,
		scenario: scenario,
		name:     scenarioName,
		seed:     seed,
		log:      logger.With("scenario", scenarioName),
		rng:      sim.NewRand(seed),

		prevRemittances: cfg.Services.RemittanceInflow,
		prevUnrest:      0.3,
		buyerDemands:    0.6,
		dollarIndex:     1.0,
		stability:       0.6,
		bankingHealth:   0.6,
	}
	for _, opt := range opts {
		opt(e)
	}

	start := cfg.Simulation.StartYear
	e.globalMarket = models.NewGlobalMarketModel(cfg.GlobalMarkets, scenario)
	e.geopolitics = models.NewGeopoliticsModel(cfg.Geopolitics, scenario)
	e.investment = models.NewInvestmentModel(cfg.Investment, scenario, start)
	e.tradePolicy = models.NewTradePolicyModel(cfg.TradePolicy, scenario)
	e.logistics = models.NewLogisticsModel(cfg.Logistics, scenario, start)
	e.exchangeRate = models.NewExchangeRateModel(cfg.ExchangeRate, scenario)
	e.compliance = models.NewComplianceModel(cfg.Compliance, scenario)
	e.structural = models.NewStructuralModel(cfg.Structural, start, e.sectorData)
	e.digital = models.NewDigitalTradeModel(cfg.Digital, scenario)
	e.services = models.NewServicesTradeModel(cfg.Services, scenario)

	for _, id := range sortedIDs(cfg.Sectors) {
		e.sectors = append(e.sectors, models.NewExportSectorModel(id, cfg.Sectors[id], scenario))
		e.prevExports += cfg.Sectors[id].InitialVolume
	}
	for _, id := range sortedIDs(cfg.Imports) {
		e.imports = append(e.imports, models.NewImportCategoryModel(id, cfg.Imports[id]))
		e.prevImports += cfg.Imports[id].InitialVolume
	}
	return e, nil
}

// Run simulates every year in the configured window. A model panic fails only
// that model's slot for the year; the year record tags the failure and the
// run continues. Cancellation stops the run between years.
func (e *Engine) Run(ctx context.Context) (*domain.RunResult, error) {
	start, end := e.cfg.Simulation.StartYear, e.cfg.Simulation.EndYear
	result := &domain.RunResult{
		Metadata: domain.RunMetadata{
			RunID:     uuid.NewString(),
			Scenario:  e.name,
			StartYear: start,
			EndYear:   end,
			Seed:      e.seed,
			CreatedAt: time.Now().UTC(),
		},
	}

	e.log.Info("starting simulation",
		"run_id", result.Metadata.RunID, "years", end-start+1, "seed", e.seed)

	for i, year := 0, start; year <= end; i, year = i+1, year+1 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("engine.Run: year %d: %w", year, ctx.Err())
		default:
		}

		rec := e.stepYear(i, year)
		result.Years = append(result.Years, rec)
		if rec.Failed() {
			e.log.Warn("year completed with failed models", "year", year)
		}

		if n := e.cfg.Simulation.SaveInterval; n > 0 && e.snapshot != nil && (i+1)%n == 0 {
			e.snapshot(result)
		}
	}

	if final, ok := result.FinalYear(); ok {
		e.log.Info("simulation complete",
			"run_id", result.Metadata.RunID,
			"final_exports", final.Aggregates.TotalExports,
			"final_imports", final.Aggregates.TotalImports,
			"final_gdp", final.Aggregates.GDP)
	}
	return result, nil
}

// stepYear advances every model one year in dependency order: world context
// first, then policy and macro channels, then the goods models that consume
// them, then the year's aggregates.
func (e *Engine) stepYear(yearIdx, year int) domain.YearRecord {
	rec := domain.YearRecord{
		Year:    year,
		Exports: make(map[string]domain.SectorResult, len(e.sectors)),
		Imports: make(map[string]domain.ImportResult, len(e.imports)),
	}

	// Ambient draws happen up front in a fixed sequence so the models see
	// a stable draw order regardless of their own internal consumption.
	climate := domain.Clamp(0.15+0.012*float64(yearIdx)+e.rng.Uniform(-0.05, 0.05), 0, 0.8)
	energyPrice := domain.Clamp(e.rng.Normal(0.02, 0.08), -0.3, 0.4)
	regionalFX := e.rng.Uniform(-0.02, 0.02)
	e.dollarIndex = domain.Clamp(e.dollarIndex+e.rng.Normal(0, 0.03), 0.8, 1.25)
	e.stability = domain.Clamp(e.stability+e.rng.Uniform(-0.03, 0.03), 0.3, 0.85)
	e.bankingHealth = domain.Clamp(e.bankingHealth+e.rng.Uniform(-0.02, 0.03), 0.3, 0.9)

	tensions := e.geopolitics.Tensions()
	e.step(&rec, "global_market", func() {
		rec.GlobalMarket = e.globalMarket.Step(yearIdx, year, e.rng, tensions)
	})
	e.step(&rec, "geopolitics", func() {
		rec.Geopolitics = e.geopolitics.Step(yearIdx, year, e.rng)
	})
	tensions = e.geopolitics.Tensions()

	shipping := 0.0
	for _, w := range rec.Geopolitics.ActiveTradeWars {
		shipping += w.Intensity * 0.3
	}
	shipping = domain.Clamp01(shipping * e.scenario.SupplyChainDisruption)

	e.step(&rec, "investment", func() {
		rec.Investment = e.investment.Step(yearIdx, year, e.rng, models.InvestmentInputs{
			GlobalEconomicGrowth: domain.WeightedSum(rec.GlobalMarket.MarketGrowth, e.cfg.GlobalMarkets.MarketWeights),
			GlobalFDIFlows:       rec.GlobalMarket.SupplyChainImpact,
			GeopoliticalTension:  tensions,
		})
	})
	e.step(&rec, "trade_policy", func() {
		rec.TradePolicy = e.tradePolicy.Step(yearIdx, year, e.rng)
	})
	e.step(&rec, "logistics", func() {
		rec.Logistics = e.logistics.Step(yearIdx, year, e.rng, models.LogisticsInputs{
			TradeVolume:              e.prevExports + e.prevImports,
			InfrastructureInvestment: domain.Clamp01(rec.Investment.DomesticInvestmentRate + rec.Investment.PolicyIndex*0.3),
			PolicyEffectiveness:      rec.TradePolicy.DomesticPolicyScore,
			WeatherDisruption:        climate,
			LaborUnrest:              e.prevUnrest,
			ShippingDisruption:       shipping,
		})
	})
	e.step(&rec, "exchange_rate", func() {
		rec.ExchangeRate = e.exchangeRate.Step(yearIdx, year, e.rng, models.ExchangeRateInputs{
			Exports:            e.prevExports,
			Imports:            e.prevImports,
			Remittances:        e.prevRemittances,
			FDI:                rec.Investment.FDIInflow,
			AidLoans:           0.005 * rec.Investment.GDP,
			InterventionStance: centralBankStance,
			DollarIndex:        e.dollarIndex,
			RiskAppetite:       domain.Clamp01(0.6 - 0.3*tensions),
			RegionalTrends:     regionalFX,
			OilPriceChange:     energyPrice,
			PoliticalStability: e.stability,
			BankingHealth:      e.bankingHealth,
		})
	})

	e.buyerDemands = min(e.buyerDemands*(1+e.cfg.Compliance.Labor.BuyerRequirementsGrowth), 1.0)
	e.step(&rec, "compliance", func() {
		rec.Compliance = e.compliance.Step(yearIdx, year, e.rng, models.ComplianceInputs{
			RegulatoryPressure: domain.Clamp01(0.35 + 0.3*tensions + 0.005*float64(yearIdx)),
			BuyerRequirements:  e.buyerDemands,
		})
	})
	e.step(&rec, "structural_transformation", func() {
		rec.Structural = e.structural.Step(yearIdx, year, e.rng)
	})
	e.step(&rec, "digital_trade", func() {
		rec.Digital = e.digital.Step(yearIdx, year, e.rng, models.DigitalInputs{
			GlobalEcommerceGrowth: rec.GlobalMarket.WeightedDemandGrowth + 0.05,
			GlobalDigitalDemand:   rec.GlobalMarket.SectorDemandGrowth["it_services"],
			PolicyPressure:        rec.TradePolicy.DomesticPolicyScore,
		})
	})
	e.step(&rec, "services_trade", func() {
		rec.Services = e.services.Step(yearIdx, year, e.rng, models.ServicesInputs{
			GlobalLaborDemand:       rec.GlobalMarket.WeightedDemandGrowth,
			DestinationShock:        -shipping * 0.05,
			GlobalTourismGrowth:     rec.GlobalMarket.WeightedDemandGrowth + 0.01,
			GlobalOutsourcingDemand: rec.GlobalMarket.SectorDemandGrowth["it_services"],
			GlobalServicesDemand:    rec.GlobalMarket.WeightedDemandGrowth,
			GlobalFDIFlows:          rec.Investment.FDIGrowth,
			DigitalInfrastructure:   rec.Digital.InfrastructureIndex,
		})
	})

	for _, sector := range e.sectors {
		id := sector.ID()
		in := models.SectorInputs{
			GlobalDemandGrowth:   rec.GlobalMarket.WeightedDemandGrowth,
			TariffChanges:        rec.TradePolicy.TariffChanges,
			ExchangeRateImpact:   rec.ExchangeRate.ExportImpact,
			LogisticsPerformance: rec.Logistics.OverallPerformance,
			TradePolicyImpact:    rec.TradePolicy.NetImpact,
			ComplianceImpact:     rec.Compliance.SectorCosts[id] - rec.Compliance.MarketPremium,
			DigitalAdoption:      rec.Digital.EcommerceAdoption,
			CompetitorGrowth:     e.globalMarket.SectorCompetitorGrowth(id),
			RnDInvestment:        rec.Structural.CapabilityIndex,
			TechnologyInvestment: rec.Structural.CapabilityIndex,
			SustainabilityFocus:  rec.Compliance.EnvironmentalCompliance,
			ClimateSeverity:      climate,
		}
		if g, ok := rec.GlobalMarket.SectorDemandGrowth[id]; ok {
			in.GlobalDemandGrowth = g
		}
		e.step(&rec, "sector:"+id, func() {
			rec.Exports[id] = sector.Step(yearIdx, year, e.rng, in)
		})
	}

	logCostDelta := 0.0
	if yearIdx > 0 {
		logCostDelta = rec.Logistics.LogisticsCost - e.prevLogCost
	}
	for _, imp := range e.imports {
		id := imp.ID()
		in := models.ImportInputs{
			DomesticProductionGrowth: rec.Investment.GDPGrowth * 0.8,
			ConsumptionDemandGrowth:  rec.Investment.GDPGrowth,
			ExchangeRateImpact:       rec.ExchangeRate.Depreciation,
			TariffChanges:            -e.cfg.TradePolicy.Domestic.TariffRationalization * 0.1,
			GlobalPriceChanges: map[string]float64{
				"energy":            energyPrice,
				"industrial_inputs": energyPrice * 0.3,
			},
			LogisticsCost:              logCostDelta,
			DomesticCapacityInvestment: rec.Investment.DomesticInvestmentRate,

			RMGGrowth:                  rec.Exports["rmg"].GrowthRate,
			LogisticsPerformance:       rec.Logistics.OverallPerformance,
			IndustrialPolicySupport:    rec.Structural.PolicyEffectiveness,
			TechTransfer:               domain.Clamp01(rec.Investment.FDIGrowth),
			GDPPerCapitaGrowth:         rec.Investment.GDPGrowth - 0.01,
			UrbanizationRate:           domain.Clamp(0.38+0.005*float64(yearIdx), 0, 0.6),
			MiddleClassGrowth:          rec.Investment.GDPGrowth * 0.8,
			DomesticQualityImprovement: rec.Structural.CapabilityIndex * 0.05,
			AgriculturalProductivity:   0.02,
			EconomicGrowth:             rec.Investment.GDPGrowth,
			IndustrializationRate:      rec.Investment.DomesticInvestmentRate,
			GlobalEnergyPriceChange:    energyPrice,
			RenewableInvestment:        domain.Clamp01(0.03 + 0.004*float64(yearIdx)),
			EnergyPolicyStrength:       rec.TradePolicy.DomesticPolicyScore,
		}
		e.step(&rec, "import:"+id, func() {
			rec.Imports[id] = imp.Step(yearIdx, year, e.rng, in)
		})
	}

	e.aggregate(&rec)

	// Next year's models see this year's realized flows.
	if exp := rec.Aggregates.TotalExports; exp > 0 {
		e.prevExports = exp
	}
	if imp := rec.Aggregates.TotalImports; imp > 0 {
		e.prevImports = imp
	}
	if rec.Services.RemittanceInflow > 0 {
		e.prevRemittances = rec.Services.RemittanceInflow
	}
	if rec.Compliance.UnrestRisk > 0 {
		e.prevUnrest = rec.Compliance.UnrestRisk
	}
	e.prevLogCost = rec.Logistics.LogisticsCost

	return rec
}

// step runs one model step, tagging the year record with its outcome. A panic
// inside the model leaves its result slot zero-valued and tags the failure.
func (e *Engine) step(rec *domain.YearRecord, model string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("model step failed", "model", model, "year", rec.Year, "panic", r)
			rec.Outcomes = append(rec.Outcomes, domain.Outcome{
				Model:  model,
				Status: domain.StepFailed,
				Err:    fmt.Sprint(r),
			})
			return
		}
		rec.Outcomes = append(rec.Outcomes, domain.Outcome{Model: model, Status: domain.StepOK})
	}()
	fn()
}

// aggregate derives the year's headline metrics from the model results.
func (e *Engine) aggregate(rec *domain.YearRecord) {
	exports := rec.TotalExports()
	imports := rec.TotalImports()
	gdp := rec.Investment.GDP

	volumes := make(map[string]float64, len(rec.Exports))
	for id, s := range rec.Exports {
		volumes[id] = s.ExportVolume
	}

	agg := domain.AggregateMetrics{
		TotalExports:    exports,
		TotalImports:    imports,
		ServiceExports:  rec.Services.TotalServiceExports,
		TradeBalance:    domain.TradeBalance(exports, imports),
		GDP:             gdp,
		TradeOpenness:   domain.TradeOpenness(exports, imports, gdp),
		ExchangeRate:    rec.ExchangeRate.Rate,
		Diversification: domain.HHI(volumes),
	}
	if gdp > 0 {
		agg.ExportToGDP = exports / gdp
		agg.ImportToGDP = imports / gdp
	}
	rec.Aggregates = agg
}

// sortedIDs returns the map keys in ascending order. Model construction and
// stepping follow this order so the RNG draw sequence is reproducible.
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
