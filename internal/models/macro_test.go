package models_test

import (
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/models"
	"github.com/nayeemz/bdtradesim/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func globalMarketsConfig() config.GlobalMarketsConfig {
	return config.GlobalMarketsConfig{
		GDPGrowth:     map[string]float64{"usa": 0.025, "eu": 0.015, "china": 0.05},
		MarketWeights: map[string]float64{"usa": 0.35, "eu": 0.45, "china": 0.20},
		DemandGrowth:  map[string]float64{"rmg": 0.03, "pharma": 0.06},
		CompetitorGrowth: map[string]map[string]float64{
			"vietnam": {"rmg": 0.07},
			"india":   {"rmg": 0.05, "pharma": 0.09},
		},
		ChinaPlusOne: 0.7, NearshoringTrend: 0.5, ResiliencePremium: 0.2,
		SectorSupplyChains: map[string]float64{"rmg": 0.8},
	}
}

func TestGlobalMarket_SameSeedReplaysIdentically(t *testing.T) {
	run := func() map[string]float64 {
		rng := sim.NewRand(31)
		m := models.NewGlobalMarketModel(globalMarketsConfig(), baselineScenario())
		var demand map[string]float64
		for i := 0; i < 10; i++ {
			demand = m.Step(i, 2025+i, rng, 0.6).SectorDemandGrowth
		}
		return demand
	}

	assert.Equal(t, run(), run())
}

func TestGlobalMarket_ExposesPerSectorCompetitors(t *testing.T) {
	m := models.NewGlobalMarketModel(globalMarketsConfig(), baselineScenario())
	rng := sim.NewRand(2)

	res := m.Step(0, 2025, rng, 0.5)

	rmg := m.SectorCompetitorGrowth("rmg")
	require.Contains(t, rmg, "vietnam")
	require.Contains(t, rmg, "india")
	assert.NotContains(t, m.SectorCompetitorGrowth("pharma"), "vietnam")
	require.Contains(t, res.SectorDemandGrowth, "rmg")
	require.Contains(t, res.CompetitorGrowth, "vietnam")
}

func TestGlobalMarket_HighTensionsShiftInventoryRegime(t *testing.T) {
	calm := models.NewGlobalMarketModel(globalMarketsConfig(), baselineScenario())
	tense := models.NewGlobalMarketModel(globalMarketsConfig(), baselineScenario())

	var calmShift, tenseShift float64
	rngA, rngB := sim.NewRand(4), sim.NewRand(4)
	for i := 0; i < 10; i++ {
		calmShift = calm.Step(i, 2025+i, rngA, 0.2).ChinaPlusOne
		tenseShift = tense.Step(i, 2025+i, rngB, 0.9).ChinaPlusOne
	}

	assert.Greater(t, tenseShift, calmShift)
}

func geopoliticsConfig() config.GeopoliticsConfig {
	return config.GeopoliticsConfig{
		BBINLevel: 0.3, BBINImprovement: 0.03,
		BayOfBengalLevel: 0.4, BayOfBengalImprovement: 0.02,
		SAARCRevivalProbability: 0.3,
		USChinaTension:          0.7, USChinaAnnualChange: -0.01,
		IndiaChinaTension: 0.6, IndiaChinaAnnualChange: -0.01,
		TradeWarProbability: 0.3, TradeWarAnnualChange: -0.01,
		BRIParticipation: 0.7, BRIImplementationRate: 0.1,
		ExportMarketExposure: 0.6, ExportDiversification: 0.3,
		TariffEscalationExposure: 0.5,
	}
}

func TestGeopolitics_TensionsBlendGreatPowerLevels(t *testing.T) {
	m := models.NewGeopoliticsModel(geopoliticsConfig(), baselineScenario())
	assert.InDelta(t, 0.7*0.5+0.6*0.3+0.5*0.2, m.Tensions(), 1e-9)
}

func TestGeopolitics_ResultStaysBounded(t *testing.T) {
	m := models.NewGeopoliticsModel(geopoliticsConfig(), baselineScenario())
	rng := sim.NewRand(12)

	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng)
		assert.GreaterOrEqual(t, res.USChinaTension, 0.3)
		assert.LessOrEqual(t, res.USChinaTension, 0.9)
		assert.GreaterOrEqual(t, res.TradeWarProbability, 0.05)
		assert.LessOrEqual(t, res.TradeWarProbability, 0.8)
		for _, w := range res.ActiveTradeWars {
			assert.GreaterOrEqual(t, w.Intensity, 0.1)
			assert.LessOrEqual(t, w.Intensity, 0.9)
			assert.Greater(t, w.RemainingYears, 0)
		}
		assert.InDelta(t, res.Opportunity-res.Vulnerability, res.NetImpact, 1e-9)
	}
}

func investmentConfig() config.InvestmentConfig {
	return config.InvestmentConfig{
		InitialGDP: 350000, GDPBaseGrowth: 0.06,
		InitialFDI: 3500, FDIBaseGrowth: 0.08,
		FDISectors:             map[string]float64{"rmg": 0.3, "energy": 0.2, "telecom": 0.15, "other": 0.35},
		DomesticInvestmentRate: 0.32, DomesticRateChange: 0.002,
		InterestRate: 0.08, BusinessConfidence: 0.6,
		InfrastructureQuality: 0.4, RegionalCompetitiveness: -0.02,
		SEZ: config.SEZConfig{
			Active: 8, Utilization: 0.4, NewZoneProbability: 0.4,
			UtilizationImprovement: 0.04, ExportPerZone: 1200,
		},
		PolicyIndex: 0.55, RepatriationRestrictions: 0.4,
		InvestmentIncentives: 0.5, PolicyImprovement: 0.01,
	}
}

func TestInvestment_FDISectorSharesStayNormalized(t *testing.T) {
	m := models.NewInvestmentModel(investmentConfig(), baselineScenario(), 2025)
	rng := sim.NewRand(19)

	in := models.InvestmentInputs{GlobalEconomicGrowth: 0.03}
	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng, in)
		sum := 0.0
		for _, share := range res.FDISectors {
			assert.GreaterOrEqual(t, share, 0.0)
			sum += share
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
		assert.Greater(t, res.GDP, 0.0)
		assert.GreaterOrEqual(t, res.DomesticInvestmentRate, 0.25)
		assert.LessOrEqual(t, res.DomesticInvestmentRate, 0.40)
	}
}

func TestInvestment_GDPCompoundsAndAccessorTracks(t *testing.T) {
	m := models.NewInvestmentModel(investmentConfig(), baselineScenario(), 2025)
	rng := sim.NewRand(6)

	res := m.Step(0, 2025, rng, models.InvestmentInputs{GlobalEconomicGrowth: 0.03})
	assert.InDelta(t, 350000*(1+res.GDPGrowth), res.GDP, 1e-6)
	assert.Equal(t, res.GDP, m.GDP())
}

func TestStructural_ObservedDataOverridesSyntheticGrowth(t *testing.T) {
	cfg := config.StructuralConfig{
		Sectors: map[string]config.StructuralSectorConfig{
			"rmg":    {Value: 38000, Complexity: 0.3, Position: 0.3},
			"pharma": {Value: 1600, Complexity: 0.7, Position: 0.5},
		},
		CapabilityIndex: 0.4, PolicyEffectiveness: 0.5,
	}

	source := stubSectorData{2025: {"rmg": 40000, "pharma": 1700}}
	m := models.NewStructuralModel(cfg, 2025, source)
	rng := sim.NewRand(8)

	res := m.Step(0, 2025, rng)
	assert.Equal(t, "observed", res.DataSource)
	assert.InDelta(t, 40000, res.SectorValues["rmg"], 1e-9)

	res = m.Step(1, 2026, rng)
	assert.Equal(t, "synthetic", res.DataSource)
	assert.Greater(t, res.SectorValues["rmg"], 40000.0)
}

func TestStructural_UpgradingIsMonotoneAndCapped(t *testing.T) {
	cfg := config.StructuralConfig{
		Sectors: map[string]config.StructuralSectorConfig{
			"rmg": {Value: 38000, Complexity: 0.3, Position: 0.3},
		},
		CapabilityIndex: 0.4, PolicyEffectiveness: 0.5,
	}
	m := models.NewStructuralModel(cfg, 2025, nil)
	rng := sim.NewRand(15)

	prev := 0.3
	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng)
		pos := res.ValueChainPositions["rmg"]
		assert.GreaterOrEqual(t, pos, prev)
		assert.LessOrEqual(t, pos, 0.95)
		assert.LessOrEqual(t, res.CapabilityIndex, 0.95)
		assert.Contains(t, []string{"weak interventions", "moderate support", "strong industrial policy"}, res.PolicyRegime)
		prev = pos
	}
}

func TestDigital_AdoptionFollowsSCurveUnderCap(t *testing.T) {
	cfg := config.DigitalConfig{
		EcommerceAdoption: 0.15, EcommerceGrowth: 0.08,
		DigitalServicesExports: 1500, DigitalServicesGrowth: 0.12,
		InfrastructureIndex: 0.35, InfraImprovement: 0.03,
		GovtInvestment: 0.02, PrivateInvestment: 0.02,
		TradeBarriers: 0.6, PolicyImprovement: 0.02,
		RegionalHarmonization: 0.01, SkillDevelopment: 0.03,
	}
	m := models.NewDigitalTradeModel(cfg, baselineScenario())
	rng := sim.NewRand(23)

	prevAdoption := 0.15
	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng, models.DigitalInputs{GlobalDigitalDemand: 0.05})
		assert.GreaterOrEqual(t, res.EcommerceAdoption, prevAdoption)
		assert.LessOrEqual(t, res.EcommerceAdoption, 0.95)
		assert.GreaterOrEqual(t, res.TradeBarriers, 0.1)
		prevAdoption = res.EcommerceAdoption
	}
}

func TestServices_TotalExcludesCommercialPresence(t *testing.T) {
	cfg := config.ServicesConfig{
		RemittanceInflow: 18000, OverseasWorkers: 8, WorkerGrowth: 0.04, SkillImprovement: 0.02,
		TourismEarnings: 500, TouristArrivals: 0.8, ArrivalGrowth: 0.06,
		TourismInfrastructure: 0.02, TourismMarketing: 0.01, SpendingGrowth: 0.03,
		BPOExports: 1200, BPOGrowth: 0.12, BPOSkillDevelopment: 0.04, BPOCompetitivePosition: -0.02,
		ProfessionalExports: 500, ProfessionalGrowth: 0.09, ProfessionalSkill: 0.05,
		InstitutionalQuality: 0.01, RegionalIntegration: 0.02,
		ServiceFDI: 1000, ServiceFDIGrowth: 0.07, BusinessEnvironment: 0.01,
		MarketSizeEffect: 0.03, ServiceLiberalization: 0.02,
	}
	m := models.NewServicesTradeModel(cfg, baselineScenario())
	rng := sim.NewRand(27)

	res := m.Step(0, 2025, rng, models.ServicesInputs{DigitalInfrastructure: 0.4})

	want := res.BPOExports + res.ProfessionalExports + res.TourismEarnings + res.RemittanceInflow
	assert.InDelta(t, want, res.TotalServiceExports, 1e-9)
	// service FDI is commercial presence, not an export flow
	assert.Greater(t, res.ServiceFDI, 0.0)
}

// stubSectorData is a canned SectorDataSource keyed by year.
type stubSectorData map[int]map[string]float64

func (s stubSectorData) SectorExports(year int) (map[string]float64, bool) {
	vals, ok := s[year]
	return vals, ok
}
