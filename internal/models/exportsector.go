package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// Baselines the growth formula measures deviations against.
const (
	globalDemandBaseline = 0.03
	logisticsBaseline    = 0.6
	growthNoiseSigma     = 0.02
)

// SectorInputs carries every exogenous signal an export sector consumes in a
// year. The engine assembles it from the macro models; nothing here is a
// hard-coded placeholder.
type SectorInputs struct {
	GlobalDemandGrowth   float64            // sector-specific world demand growth
	TariffChanges        map[string]float64 // destination market -> tariff delta
	ExchangeRateImpact   float64            // signed, from the currency model
	LogisticsPerformance float64            // 0-1 overall logistics score
	TradePolicyImpact    float64            // signed net policy impact
	ComplianceImpact     float64            // signed net compliance impact
	DigitalAdoption      float64            // 0-1 e-commerce adoption
	CompetitorGrowth     map[string]float64 // competitor country -> growth in this sector
	RnDInvestment        float64            // 0-1, drives emerging-sector quality
	TechnologyInvestment float64            // 0-1, drives traditional-sector processing
	SustainabilityFocus  float64            // 0-1, drives certification uptake
	ClimateSeverity      float64            // 0-1, climate stress on traditional sectors
}

// ExportSectorModel advances one export sector year by year. Specializations
// (RMG, emerging, traditional) plug in as post-adjustment strategies rather
// than separate model types.
type ExportSectorModel struct {
	id       string
	cfg      config.SectorConfig
	scenario config.ScenarioConfig
	adjuster SectorAdjuster

	volumes         map[int]float64
	marketShares    map[int]float64
	competitiveness map[int]float64
}

// NewExportSectorModel builds a sector model from its configuration, choosing
// the adjustment strategy from the configured kind.
func NewExportSectorModel(id string, cfg config.SectorConfig, scenario config.ScenarioConfig) *ExportSectorModel {
	m := &ExportSectorModel{
		id:              id,
		cfg:             cfg,
		scenario:        scenario,
		adjuster:        newSectorAdjuster(cfg.Kind),
		volumes:         map[int]float64{},
		marketShares:    map[int]float64{},
		competitiveness: map[int]float64{},
	}
	return m
}

// ID returns the sector identifier.
func (m *ExportSectorModel) ID() string { return m.id }

// initialCompetitiveness averages the configured competitiveness factors.
func (m *ExportSectorModel) initialCompetitiveness() float64 {
	if len(m.cfg.CompetitivenessFactors) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, k := range sortedKeys(m.cfg.CompetitivenessFactors) {
		sum += m.cfg.CompetitivenessFactors[k]
	}
	return sum / float64(len(m.cfg.CompetitivenessFactors))
}

// Step simulates one year. yearIdx is the zero-based offset from the start
// year; year is the calendar year recorded in the result.
func (m *ExportSectorModel) Step(yearIdx, year int, rng *sim.Rand, in SectorInputs) domain.SectorResult {
	prevVolume := m.lookup(m.volumes, yearIdx-1, m.cfg.InitialVolume)
	prevComp := m.lookup(m.competitiveness, yearIdx-1, m.initialCompetitiveness())
	prevShare := m.lookup(m.marketShares, yearIdx-1, m.cfg.GlobalMarketShare)

	// Base trajectory scaled by global demand's deviation from its baseline.
	adjustedGrowth := m.cfg.GrowthTrajectory * (1 + 0.5*(in.GlobalDemandGrowth-globalDemandBaseline))

	tariffImpact := 0.0
	if len(in.TariffChanges) > 0 {
		sum := 0.0
		for _, market := range sortedKeys(in.TariffChanges) {
			sum += in.TariffChanges[market]
		}
		tariffImpact = -(sum / float64(len(in.TariffChanges))) * m.cfg.TariffExposure
	}

	compChange := 0.2*in.ExchangeRateImpact +
		0.3*(in.LogisticsPerformance-logisticsBaseline) +
		0.2*in.TradePolicyImpact +
		0.1*in.DigitalAdoption -
		0.2*in.ComplianceImpact
	newComp := domain.Clamp(prevComp+compChange*0.1, 0.1, 1.0)

	competitorImpact := 0.0
	for _, comp := range sortedKeys(in.CompetitorGrowth) {
		competitorImpact -= (in.CompetitorGrowth[comp] - m.cfg.GrowthTrajectory) * 0.2
	}

	effectiveGrowth := adjustedGrowth + tariffImpact + (newComp-prevComp)*2 + competitorImpact
	effectiveGrowth *= m.scenario.ExportGrowth
	effectiveGrowth += rng.Normal(0, growthNoiseSigma)

	newVolume := prevVolume * (1 + effectiveGrowth)

	shareChange := 0.2 * (effectiveGrowth - in.GlobalDemandGrowth)
	newShare := domain.Clamp01(prevShare * (1 + shareChange))

	var effects map[string]float64
	if m.adjuster != nil {
		newVolume, effects = m.adjuster.Adjust(rng, in, newVolume)
	}

	m.volumes[yearIdx] = newVolume
	m.marketShares[yearIdx] = newShare
	m.competitiveness[yearIdx] = newComp

	return domain.SectorResult{
		Sector:             m.id,
		Year:               year,
		ExportVolume:       newVolume,
		GrowthRate:         effectiveGrowth,
		Competitiveness:    newComp,
		GlobalMarketShare:  newShare,
		ValueChainPosition: m.cfg.ValueChainPosition,
		TariffImpact:       tariffImpact,
		CompetitorImpact:   competitorImpact,
		AdjusterEffects:    effects,
	}
}

func (m *ExportSectorModel) lookup(hist map[int]float64, idx int, fallback float64) float64 {
	if v, ok := hist[idx]; ok {
		return v
	}
	return fallback
}
