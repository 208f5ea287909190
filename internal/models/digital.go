package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// DigitalInputs carries the global conditions shaping digital trade in a year.
type DigitalInputs struct {
	GlobalEcommerceGrowth float64 // signed growth of world e-commerce
	GlobalDigitalDemand   float64 // signed growth of world digital-services demand
	PolicyPressure        float64 // 0-1 external pressure to liberalize
}

// DigitalTradeModel simulates e-commerce adoption, digital services exports,
// digital infrastructure and digital trade barriers.
type DigitalTradeModel struct {
	cfg      config.DigitalConfig
	scenario config.ScenarioConfig

	adoption       float64
	exports        float64
	infrastructure float64
	barriers       float64
}

// NewDigitalTradeModel builds the digital-trade model from configuration.
func NewDigitalTradeModel(cfg config.DigitalConfig, scenario config.ScenarioConfig) *DigitalTradeModel {
	return &DigitalTradeModel{
		cfg:            cfg,
		scenario:       scenario,
		adoption:       cfg.EcommerceAdoption,
		exports:        cfg.DigitalServicesExports,
		infrastructure: cfg.InfrastructureIndex,
		barriers:       cfg.TradeBarriers,
	}
}

// Step advances digital trade by one year.
func (m *DigitalTradeModel) Step(yearIdx, year int, rng *sim.Rand, in DigitalInputs) domain.DigitalTradeResult {
	m.stepAdoption(rng, in)
	m.stepExports(rng, in)
	m.stepInfrastructure(rng)
	m.stepBarriers(rng, in)

	return domain.DigitalTradeResult{
		Year:                   year,
		EcommerceAdoption:      m.adoption,
		DigitalServicesExports: m.exports,
		InfrastructureIndex:    m.infrastructure,
		TradeBarriers:          m.barriers,
	}
}

// stepAdoption grows e-commerce adoption along an S-curve: slow at the
// extremes, fastest around half adoption.
func (m *DigitalTradeModel) stepAdoption(rng *sim.Rand, in DigitalInputs) {
	growth := m.cfg.EcommerceGrowth*m.scenario.DigitalTrade +
		m.infrastructure*0.05 +
		in.GlobalEcommerceGrowth*0.02 +
		rng.Uniform(-0.01, 0.02)

	sCurve := 4 * m.adoption * (1 - m.adoption)
	m.adoption = min(0.95, m.adoption+growth*sCurve)
}

func (m *DigitalTradeModel) stepExports(rng *sim.Rand, in DigitalInputs) {
	growth := m.cfg.DigitalServicesGrowth*m.scenario.DigitalTrade +
		in.GlobalDigitalDemand*0.05 +
		m.cfg.SkillDevelopment*m.scenario.SkillDevelopment -
		0.05*m.barriers +
		rng.Uniform(-0.02, 0.04)
	m.exports *= 1 + growth
}

func (m *DigitalTradeModel) stepInfrastructure(rng *sim.Rand) {
	improvement := m.cfg.InfraImprovement +
		m.cfg.GovtInvestment +
		m.cfg.PrivateInvestment +
		rng.Uniform(-0.01, 0.02)
	improvement *= m.scenario.Infrastructure

	sCurve := 4 * m.infrastructure * (1 - m.infrastructure)
	m.infrastructure = min(0.95, m.infrastructure+improvement*sCurve)
}

// stepBarriers lowers digital trade barriers; the random term allows policy
// reversals.
func (m *DigitalTradeModel) stepBarriers(rng *sim.Rand, in DigitalInputs) {
	reduction := m.cfg.PolicyImprovement +
		in.PolicyPressure*0.03 +
		m.cfg.RegionalHarmonization*m.scenario.RegionalCooperation +
		rng.Uniform(-0.03, 0.02)
	m.barriers = max(0.1, m.barriers-reduction)
}
