package models_test

import (
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/models"
	"github.com/nayeemz/bdtradesim/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complianceConfig() config.ComplianceConfig {
	return config.ComplianceConfig{
		Labor: config.LaborComplianceConfig{
			InitialLevel: 0.7, InitialMinimumWage: 75, MinimumWageGrowth: 0.08,
			ComplianceCost: 0.03, BuyerRequirementsGrowth: 0.05,
		},
		Environmental: config.EnvironmentalComplianceConfig{
			InitialLevel: 0.5, CarbonTaxYear: 2027, CarbonTaxInitial: 0.02,
			CarbonTaxAnnualIncrease: 0.005, GreenPremium: 0.05, CertificationAdoption: 0.1,
		},
		Product: config.ProductComplianceConfig{
			InitialLevel: 0.55, TechnicalBarriersGrowth: 0.06,
			TestingCapacityImprovement: 0.08, ComplianceCapabilityImprovement: 0.07,
		},
	}
}

func complianceInputs() models.ComplianceInputs {
	return models.ComplianceInputs{RegulatoryPressure: 0.5, BuyerRequirements: 0.6}
}

func TestCompliance_CarbonTaxStartsOnSchedule(t *testing.T) {
	m := models.NewComplianceModel(complianceConfig(), baselineScenario())
	rng := sim.NewRand(5)

	in := complianceInputs()
	res2025 := m.Step(0, 2025, rng, in)
	assert.Zero(t, res2025.CarbonTaxRate)

	m.Step(1, 2026, rng, in)
	res2027 := m.Step(2, 2027, rng, in)
	assert.InDelta(t, 0.02, res2027.CarbonTaxRate, 1e-9)

	res2028 := m.Step(3, 2028, rng, in)
	assert.InDelta(t, 0.025, res2028.CarbonTaxRate, 1e-9)
}

func TestCompliance_CarbonBorderTaxMultiplierScalesRate(t *testing.T) {
	green := baselineScenario()
	green.CarbonBorderTax = 1.5

	base := models.NewComplianceModel(complianceConfig(), baselineScenario())
	strict := models.NewComplianceModel(complianceConfig(), green)
	in := complianceInputs()

	var baseRes, strictRes float64
	rngA, rngB := sim.NewRand(5), sim.NewRand(5)
	for i, year := 0, 2025; year <= 2027; i, year = i+1, year+1 {
		baseRes = base.Step(i, year, rngA, in).CarbonTaxRate
		strictRes = strict.Step(i, year, rngB, in).CarbonTaxRate
	}

	assert.InDelta(t, baseRes*1.5, strictRes, 1e-9)
}

func TestCompliance_StandardsNeverRegress(t *testing.T) {
	m := models.NewComplianceModel(complianceConfig(), baselineScenario())
	rng := sim.NewRand(9)

	in := complianceInputs()
	prev := m.Step(0, 2025, rng, in)
	for i := 1; i < 26; i++ {
		res := m.Step(i, 2025+i, rng, in)
		assert.GreaterOrEqual(t, res.LaborCompliance, prev.LaborCompliance)
		assert.GreaterOrEqual(t, res.EnvironmentalCompliance, prev.EnvironmentalCompliance)
		assert.Greater(t, res.MinimumWage, prev.MinimumWage)
		assert.LessOrEqual(t, res.LaborCompliance, 0.98)
		prev = res
	}
}

func TestCompliance_SectorCostsSkewTowardRMG(t *testing.T) {
	m := models.NewComplianceModel(complianceConfig(), baselineScenario())
	rng := sim.NewRand(3)

	res := m.Step(0, 2025, rng, complianceInputs())

	require.Contains(t, res.SectorCosts, "rmg")
	require.Contains(t, res.SectorCosts, "it_services")
	assert.Greater(t, res.SectorCosts["rmg"], res.SectorCosts["it_services"])
	assert.InDelta(t, res.MarketPremium-res.TotalCost, res.NetImpact, 1e-9)
}

func TestCompliance_UnrestRiskStaysBounded(t *testing.T) {
	m := models.NewComplianceModel(complianceConfig(), baselineScenario())
	rng := sim.NewRand(7)

	in := complianceInputs()
	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng, in)
		assert.GreaterOrEqual(t, res.UnrestRisk, 0.05)
		assert.LessOrEqual(t, res.UnrestRisk, 0.8)
	}
}
