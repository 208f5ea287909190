package models_test

import (
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/models"
	"github.com/nayeemz/bdtradesim/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policyConfig() config.TradePolicyConfig {
	return config.TradePolicyConfig{
		LDCGraduation: config.LDCGraduationConfig{
			Year: 2026,
			TariffIncreases: map[string]float64{
				"eu": 0.09, "us": 0.15, "canada": 0.12,
			},
		},
		FTAs: map[string]config.FTAConfig{
			"safta": {ImplementationLevel: 0.6, TariffReduction: 0.7, SensitiveListCoverage: 0.3},
		},
		ProposedFTAs: map[string]config.ProposedFTAConfig{
			"japan": {Year: 2029, Probability: 0.6},
		},
		RCEPAccession: config.ProposedFTAConfig{Year: 2032, Probability: 0.4},
		Domestic: config.DomesticPolicyConfig{
			TariffRationalization: 0.05, CashIncentiveLevel: 0.05,
			CoveredSectors: []string{"rmg", "pharma"},
			ZonesPlanned:   100, ZoneImplementationRate: 0.06, ZoneEffectiveness: 0.7,
		},
		Enforcement: 1.0,
	}
}

func TestTradePolicy_LDCGraduationFiresOnce(t *testing.T) {
	m := models.NewTradePolicyModel(policyConfig(), baselineScenario())
	rng := sim.NewRand(1)

	res2025 := m.Step(0, 2025, rng)
	assert.Empty(t, ldcEvents(res2025))
	assert.Zero(t, res2025.TariffChanges["eu"])

	res2026 := m.Step(1, 2026, rng)
	require.Len(t, ldcEvents(res2026), 1)
	assert.InDelta(t, 0.09, res2026.TariffChanges["eu"], 1e-9)
	assert.InDelta(t, 0.15, res2026.TariffChanges["us"], 1e-9)
	assert.Less(t, ldcEvents(res2026)[0].Impact, 0.0)

	res2027 := m.Step(2, 2027, rng)
	assert.Empty(t, ldcEvents(res2027))
	assert.Zero(t, res2027.TariffChanges["us"])
}

func TestTradePolicy_TradeBarrierMultiplierScalesGraduation(t *testing.T) {
	harsh := baselineScenario()
	harsh.TradeBarriers = 1.8

	base := models.NewTradePolicyModel(policyConfig(), baselineScenario())
	tense := models.NewTradePolicyModel(policyConfig(), harsh)

	baseRes := base.Step(0, 2026, sim.NewRand(2))
	tenseRes := tense.Step(0, 2026, sim.NewRand(2))

	assert.Greater(t, tenseRes.TariffChanges["eu"], baseRes.TariffChanges["eu"])
}

func TestTradePolicy_FTADeepeningCutsTariffs(t *testing.T) {
	m := models.NewTradePolicyModel(policyConfig(), baselineScenario())
	rng := sim.NewRand(6)

	res := m.Step(0, 2025, rng)
	// SAFTA ratchets from 0.6 toward full implementation each year.
	assert.Less(t, res.TariffChanges["safta"], 0.0)
}

func TestTradePolicy_ScoresStayBounded(t *testing.T) {
	m := models.NewTradePolicyModel(policyConfig(), baselineScenario())
	rng := sim.NewRand(8)

	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng)
		assert.GreaterOrEqual(t, res.MarketAccessScore, 0.1)
		assert.LessOrEqual(t, res.MarketAccessScore, 1.0)
		assert.GreaterOrEqual(t, res.DomesticPolicyScore, 0.1)
		assert.LessOrEqual(t, res.DomesticPolicyScore, 1.0)
		assert.LessOrEqual(t, res.EconomicZones, 100)
	}
}

func ldcEvents(res domain.TradePolicyResult) []domain.PolicyEvent {
	var out []domain.PolicyEvent
	for _, ev := range res.Events {
		if ev.Kind == "ldc_graduation" {
			out = append(out, ev)
		}
	}
	return out
}
