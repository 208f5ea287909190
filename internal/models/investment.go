package models

import (
	"math"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// InvestmentInputs carries the exogenous signals the investment model
// consumes in a year.
type InvestmentInputs struct {
	GlobalEconomicGrowth float64 // weighted world GDP growth
	GlobalFDIFlows       float64 // signed change in world FDI flows
	GeopoliticalTension  float64 // 0-1, dampens investor appetite
}

// InvestmentModel simulates GDP, FDI inflows, domestic investment, special
// economic zones and investment policy reform. Its GDP output anchors the
// run's aggregate trade ratios.
type InvestmentModel struct {
	cfg       config.InvestmentConfig
	scenario  config.ScenarioConfig
	startYear int

	gdp            float64
	fdi            float64
	fdiSectors     map[string]float64
	domesticRate   float64
	activeSEZs     int
	sezUtilization float64
	policyIndex    float64
	repatriation   float64
	incentives     float64
}

// NewInvestmentModel builds the investment model from configuration.
func NewInvestmentModel(cfg config.InvestmentConfig, scenario config.ScenarioConfig, startYear int) *InvestmentModel {
	fdiSectors := map[string]float64{}
	for k, v := range cfg.FDISectors {
		fdiSectors[k] = v
	}
	return &InvestmentModel{
		cfg:            cfg,
		scenario:       scenario,
		startYear:      startYear,
		gdp:            cfg.InitialGDP,
		fdi:            cfg.InitialFDI,
		fdiSectors:     fdiSectors,
		domesticRate:   cfg.DomesticInvestmentRate,
		activeSEZs:     cfg.SEZ.Active,
		sezUtilization: cfg.SEZ.Utilization,
		policyIndex:    cfg.PolicyIndex,
		repatriation:   cfg.RepatriationRestrictions,
		incentives:     cfg.InvestmentIncentives,
	}
}

// GDP returns the current GDP level in million USD.
func (m *InvestmentModel) GDP() float64 { return m.gdp }

// Step advances investment flows by one year.
func (m *InvestmentModel) Step(yearIdx, year int, rng *sim.Rand, in InvestmentInputs) domain.InvestmentResult {
	domesticInvestment := m.domesticRate * m.gdp

	// GDP responds to the investment share above a 30% baseline.
	investmentEffect := 0.4 * ((m.fdi+domesticInvestment)/m.gdp - 0.3)
	gdpGrowth := m.cfg.GDPBaseGrowth*m.scenario.Productivity +
		investmentEffect +
		0.5*in.GlobalEconomicGrowth +
		rng.Uniform(-0.01, 0.02)
	m.gdp *= 1 + gdpGrowth

	fdiGrowth := m.cfg.FDIBaseGrowth*m.scenario.FDIGrowth +
		(m.policyIndex-0.5)*0.2 -
		0.1*m.repatriation +
		m.cfg.InfrastructureQuality*0.05*m.scenario.Infrastructure +
		in.GlobalFDIFlows*0.8 +
		m.cfg.RegionalCompetitiveness -
		0.05*in.GeopoliticalTension +
		rng.Uniform(-0.15, 0.25)
	m.fdi *= 1 + fdiGrowth
	m.evolveFDISectors(rng)

	rateChange := m.cfg.DomesticRateChange +
		-0.05*(m.cfg.InterestRate-0.06) +
		0.1*(m.cfg.BusinessConfidence-0.5) +
		rng.Uniform(-0.01, 0.01)
	m.domesticRate = domain.Clamp(m.domesticRate+rateChange, 0.25, 0.40)
	domesticInvestment = m.domesticRate * m.gdp

	sezExports := m.stepSEZs(rng)
	m.stepPolicy(year, rng)

	return domain.InvestmentResult{
		Year:                     year,
		GDP:                      m.gdp,
		GDPGrowth:                gdpGrowth,
		FDIInflow:                m.fdi,
		FDIGrowth:                fdiGrowth,
		FDISectors:               copyMap(m.fdiSectors),
		DomesticInvestment:       domesticInvestment,
		DomesticInvestmentRate:   m.domesticRate,
		ActiveSEZs:               m.activeSEZs,
		SEZUtilization:           m.sezUtilization,
		SEZExports:               sezExports,
		PolicyIndex:              m.policyIndex,
		RepatriationRestrictions: m.repatriation,
	}
}

// evolveFDISectors drifts the FDI composition toward services and keeps the
// shares normalized.
func (m *InvestmentModel) evolveFDISectors(rng *sim.Rand) {
	total := 0.0
	for _, sector := range sortedKeys(m.fdiSectors) {
		var shift float64
		switch sector {
		case "telecom", "banking":
			shift = rng.Uniform(0.002, 0.008)
		case "energy":
			shift = rng.Uniform(-0.005, 0.003)
		case "infrastructure":
			shift = rng.Uniform(-0.002, 0.007)
		default:
			shift = rng.Uniform(-0.005, 0.005)
		}
		m.fdiSectors[sector] = max(0.01, m.fdiSectors[sector]+shift)
		total += m.fdiSectors[sector]
	}
	for _, sector := range sortedKeys(m.fdiSectors) {
		m.fdiSectors[sector] /= total
	}
}

// stepSEZs opens new zones probabilistically and ramps utilization along an
// S-curve toward capacity.
func (m *InvestmentModel) stepSEZs(rng *sim.Rand) float64 {
	if rng.Float64() < m.cfg.SEZ.NewZoneProbability {
		m.activeSEZs += 1 + rng.IntN(2)
	}

	improvement := m.cfg.SEZ.UtilizationImprovement +
		m.policyIndex*0.03 +
		m.cfg.InfrastructureQuality*0.02 +
		rng.Uniform(-0.02, 0.03)
	m.sezUtilization += improvement * (1 - m.sezUtilization)

	return float64(m.activeSEZs) * m.sezUtilization * m.cfg.SEZ.ExportPerZone
}

// stepPolicy advances reform in five-year cycles with random setbacks.
func (m *InvestmentModel) stepPolicy(year int, rng *sim.Rand) {
	momentum := 0.005
	if (year-m.startYear)%5 <= 1 {
		momentum = 0.02
	}
	change := m.cfg.PolicyImprovement + momentum + rng.Uniform(-0.03, 0.03)
	m.policyIndex = domain.Clamp(m.policyIndex+change, 0.3, 0.95)

	m.repatriation = domain.Clamp(m.repatriation-0.02+rng.Uniform(-0.02, 0.04), 0.05, 0.7)

	cycle := 0.01 * math.Sin(float64(year-m.startYear)*0.6)
	m.incentives = domain.Clamp(m.incentives+0.005+cycle+rng.Uniform(-0.02, 0.02), 0.3, 0.8)
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
