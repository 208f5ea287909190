package models

import (
	"math"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// SectorDataSource supplies observed per-sector export values for a year,
// million USD. The model falls back to synthetic growth when a year is not
// covered.
type SectorDataSource interface {
	SectorExports(year int) (map[string]float64, bool)
}

// structuralSector is one sector's evolving transformation state.
type structuralSector struct {
	value      float64
	complexity float64
	position   float64
}

// StructuralModel tracks export diversification, value-chain upgrading,
// capability accumulation and industrial policy effectiveness.
type StructuralModel struct {
	cfg       config.StructuralConfig
	startYear int
	source    SectorDataSource

	sectors             map[string]*structuralSector
	capability          float64
	policyEffectiveness float64
}

// NewStructuralModel builds the transformation model from configuration.
// source may be nil; the model then runs fully synthetic.
func NewStructuralModel(cfg config.StructuralConfig, startYear int, source SectorDataSource) *StructuralModel {
	sectors := make(map[string]*structuralSector, len(cfg.Sectors))
	for id, sc := range cfg.Sectors {
		sectors[id] = &structuralSector{
			value:      sc.Value,
			complexity: sc.Complexity,
			position:   sc.Position,
		}
	}
	return &StructuralModel{
		cfg:                 cfg,
		startYear:           startYear,
		source:              source,
		sectors:             sectors,
		capability:          cfg.CapabilityIndex,
		policyEffectiveness: cfg.PolicyEffectiveness,
	}
}

// Step advances structural transformation by one year.
func (m *StructuralModel) Step(yearIdx, year int, rng *sim.Rand) domain.StructuralResult {
	dataSource := "synthetic"
	if observed, ok := m.observedExports(year); ok {
		dataSource = "observed"
		for id, value := range observed {
			if s, exists := m.sectors[id]; exists {
				s.value = value
			}
		}
	} else {
		m.growSynthetic(rng)
	}

	values := make(map[string]float64, len(m.sectors))
	for id, s := range m.sectors {
		values[id] = s.value
	}

	positions := m.upgradeValueChains(rng)
	capability := m.developCapability(rng)
	effectiveness, regime := m.stepIndustrialPolicy(year, rng)

	return domain.StructuralResult{
		Year:                year,
		SectorValues:        values,
		Diversification:     domain.HHI(values),
		ValueChainPositions: positions,
		CapabilityIndex:     capability,
		PolicyEffectiveness: effectiveness,
		PolicyRegime:        regime,
		DataSource:          dataSource,
	}
}

func (m *StructuralModel) observedExports(year int) (map[string]float64, bool) {
	if m.source == nil {
		return nil, false
	}
	return m.source.SectorExports(year)
}

// growSynthetic grows each sector by complexity, value-chain position and a
// uniform shock, with an extra boost for complex sectors under strong policy.
func (m *StructuralModel) growSynthetic(rng *sim.Rand) {
	for _, id := range sortedKeys(m.sectors) {
		s := m.sectors[id]
		growth := 0.05 +
			s.complexity*0.05 +
			s.position*0.04 +
			rng.Uniform(-0.04, 0.08)
		if m.policyEffectiveness > 0.6 && s.complexity > 0.5 {
			growth += 0.03
		}
		s.value *= 1 + growth
	}
}

// upgradeValueChains moves each sector up the chain with diminishing returns
// near the top.
func (m *StructuralModel) upgradeValueChains(rng *sim.Rand) map[string]float64 {
	positions := make(map[string]float64, len(m.sectors))
	for _, id := range sortedKeys(m.sectors) {
		s := m.sectors[id]
		upgrade := 0.01 +
			m.capability*0.02 +
			s.complexity*0.01 +
			rng.Uniform(-0.005, 0.015)
		upgrade *= 1 - s.position*0.7
		s.position = min(0.95, s.position+upgrade)
		positions[id] = s.position
	}
	return positions
}

// developCapability accumulates productive capability, fed back from the
// average value-chain position and the policy environment.
func (m *StructuralModel) developCapability(rng *sim.Rand) float64 {
	avgPosition := 0.0
	for _, id := range sortedKeys(m.sectors) {
		avgPosition += m.sectors[id].position
	}
	avgPosition /= float64(len(m.sectors))

	improvement := 0.008 +
		avgPosition*0.01 +
		m.policyEffectiveness*0.01 +
		rng.Uniform(-0.005, 0.01)
	m.capability = min(0.95, m.capability+improvement*(1-m.capability*0.5))
	return m.capability
}

// stepIndustrialPolicy moves policy effectiveness along reform cycles and
// labels the resulting regime.
func (m *StructuralModel) stepIndustrialPolicy(year int, rng *sim.Rand) (float64, string) {
	cycle := 0.02 * math.Sin(float64(year-m.startYear)*0.5)
	change := 0.01 + cycle + rng.Uniform(-0.04, 0.04)
	m.policyEffectiveness = domain.Clamp(m.policyEffectiveness+change, 0.2, 0.9)

	regime := "strong industrial policy"
	switch {
	case m.policyEffectiveness < 0.4:
		regime = "weak interventions"
	case m.policyEffectiveness < 0.6:
		regime = "moderate support"
	}
	return m.policyEffectiveness, regime
}
