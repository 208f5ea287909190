package models_test

import (
	"testing"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/models"
	"github.com/nayeemz/bdtradesim/internal/sim"
	"github.com/stretchr/testify/assert"
)

func fxConfig() config.ExchangeRateConfig {
	return config.ExchangeRateConfig{
		InitialRate: 110, InitialREER: 100, InitialReserves: 35000,
		AnnualDepreciation: 0.03, Volatility: 0.05,
		InterventionThreshold: 0.08, InterventionStrength: 0.6,
		ExportElasticity: 0.7, ImportElasticity: 0.6, RemittanceSensitivity: 0.4,
	}
}

func neutralFXInputs() models.ExchangeRateInputs {
	return models.ExchangeRateInputs{
		Exports: 40000, Imports: 45000, Remittances: 18000,
		FDI: 3500, AidLoans: 2000,
		InterventionStance: 0.6, DollarIndex: 1.0, RiskAppetite: 0.5,
		PoliticalStability: 0.6, BankingHealth: 0.6,
	}
}

func TestExchangeRate_DepreciationMovesRate(t *testing.T) {
	m := models.NewExchangeRateModel(fxConfig(), baselineScenario())
	rng := sim.NewRand(2)

	res := m.Step(0, 2025, rng, neutralFXInputs())

	assert.InDelta(t, 110*(1+res.Depreciation), res.Rate, 1e-9)
	assert.Equal(t, res.Rate, m.Rate())
	// elasticities translate the move into signed trade impacts
	assert.InDelta(t, 0.7*res.Depreciation, res.ExportImpact, 1e-9)
	assert.InDelta(t, -0.6*res.Depreciation, res.ImportImpact, 1e-9)
}

func TestExchangeRate_InterventionDampensLargeMoves(t *testing.T) {
	cfg := fxConfig()
	cfg.AnnualDepreciation = 0.20 // force the move past the threshold
	m := models.NewExchangeRateModel(cfg, baselineScenario())
	rng := sim.NewRand(2)

	res := m.Step(0, 2025, rng, neutralFXInputs())

	assert.True(t, res.Intervened)
	assert.Less(t, res.Depreciation, res.PotentialDepreciation)
	assert.Greater(t, res.InterventionCost, 0.0)
}

func TestExchangeRate_HandsOffStanceSkipsIntervention(t *testing.T) {
	cfg := fxConfig()
	cfg.AnnualDepreciation = 0.20
	m := models.NewExchangeRateModel(cfg, baselineScenario())
	rng := sim.NewRand(2)

	in := neutralFXInputs()
	in.InterventionStance = 0.1
	res := m.Step(0, 2025, rng, in)

	assert.False(t, res.Intervened)
	assert.Equal(t, res.PotentialDepreciation, res.Depreciation)
	assert.Zero(t, res.InterventionCost)
}

func TestExchangeRate_BalanceOfPaymentsFeedsReserves(t *testing.T) {
	m := models.NewExchangeRateModel(fxConfig(), baselineScenario())
	rng := sim.NewRand(2)

	in := neutralFXInputs()
	res := m.Step(0, 2025, rng, in)

	repatriation := 0.6 * in.FDI
	outflows := in.Imports * 0.15 * 0.1
	wantNet := (in.Exports - in.Imports + in.Remittances - repatriation) +
		(in.FDI + in.AidLoans - outflows)
	assert.InDelta(t, wantNet, res.ExternalBalance.NetBalance, 1e-9)
	assert.InDelta(t, 35000+wantNet-res.InterventionCost, res.Reserves, 1e-9)
	assert.InDelta(t, res.Reserves/(in.Imports/12), res.ReserveMonths, 1e-6)
}

func TestExchangeRate_TradeFinanceScoresBounded(t *testing.T) {
	m := models.NewExchangeRateModel(fxConfig(), baselineScenario())
	rng := sim.NewRand(14)

	in := neutralFXInputs()
	for i := 0; i < 26; i++ {
		res := m.Step(i, 2025+i, rng, in)
		tf := res.TradeFinance
		assert.GreaterOrEqual(t, tf.OverallCondition, 0.0)
		assert.LessOrEqual(t, tf.OverallCondition, 1.0)
		assert.GreaterOrEqual(t, tf.ForexAvailability, 0.3)
		assert.LessOrEqual(t, tf.ForexAvailability, 0.98)
	}
}
