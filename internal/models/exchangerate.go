package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// ExchangeRateInputs carries the balance-of-payments components and global
// conditions the currency model consumes in a year. Flows are million USD.
type ExchangeRateInputs struct {
	Exports     float64
	Imports     float64
	Remittances float64
	FDI         float64
	AidLoans    float64

	InterventionStance float64 // 0-1, central bank appetite to defend the taka
	DollarIndex        float64 // USD strength, ~1.0 neutral
	RiskAppetite       float64 // 0-1 global risk appetite
	RegionalTrends     float64 // -1 to 1 regional currency drift
	OilPriceChange     float64 // signed

	PoliticalStability float64 // 0-1, drives aid and outflows
	BankingHealth      float64 // 0-1, drives trade finance
}

// ExchangeRateModel simulates the BDT/USD rate from balance-of-payments
// pressure, reserve adequacy and central bank intervention, plus the trade
// finance conditions that ride on it.
type ExchangeRateModel struct {
	cfg      config.ExchangeRateConfig
	scenario config.ScenarioConfig

	rate     float64
	reer     float64
	reserves float64

	outflowPropensity float64

	// trade finance state
	lcTimeDays    float64
	lcCost        float64
	lcRejection   float64
	cbStrength    float64
	cbCoverage    float64
	creditAccess  float64
	forexAdequacy float64
}

// NewExchangeRateModel builds the currency model from configuration.
func NewExchangeRateModel(cfg config.ExchangeRateConfig, scenario config.ScenarioConfig) *ExchangeRateModel {
	return &ExchangeRateModel{
		cfg:               cfg,
		scenario:          scenario,
		rate:              cfg.InitialRate,
		reer:              cfg.InitialREER,
		reserves:          cfg.InitialReserves,
		outflowPropensity: 0.15,
		lcTimeDays:        5,
		lcCost:            0.015,
		lcRejection:       0.08,
		cbStrength:        0.7,
		cbCoverage:        0.8,
		creditAccess:      0.75,
		forexAdequacy:     0.8,
	}
}

// Rate returns the current BDT/USD rate.
func (m *ExchangeRateModel) Rate() float64 { return m.rate }

// Step advances the exchange rate by one year.
func (m *ExchangeRateModel) Step(yearIdx, year int, rng *sim.Rand, in ExchangeRateInputs) domain.ExchangeRateResult {
	// FDI profit repatriation and residual capital flight are the main
	// outflows against remittance and aid inflows.
	repatriation := 0.6 * in.FDI
	otherOutflows := in.Imports * m.outflowPropensity * 0.1

	tradeBalance := in.Exports - in.Imports
	currentAccount := tradeBalance + in.Remittances - repatriation
	capitalAccount := in.FDI + in.AidLoans - otherOutflows
	overall := currentAccount + capitalAccount

	m.reserves += overall

	reserveMonths := 12.0
	if in.Imports > 0 {
		reserveMonths = m.reserves / (in.Imports / 12)
	}
	reservePressure := 0.0
	if reserveMonths < 6 {
		reservePressure = domain.Clamp01((3 - reserveMonths) / 3)
	}

	bopPressure := 0.0
	if in.Imports > 0 {
		bopPressure = -0.3 * (overall / in.Imports)
	}
	basePressure := bopPressure +
		0.2*in.DollarIndex -
		0.1*in.RiskAppetite +
		0.15*in.RegionalTrends +
		0.25*in.OilPriceChange +
		0.2*reservePressure

	potential := m.cfg.AnnualDepreciation + (basePressure+rng.Normal(0, m.cfg.Volatility))*0.1

	actual := potential
	intervened := false
	interventionCost := 0.0
	if abs(potential) > m.cfg.InterventionThreshold && in.InterventionStance > 0.3 {
		intervened = true
		effectiveness := min(m.cfg.InterventionStrength*in.InterventionStance, 0.8)
		actual = potential * (1 - effectiveness)
		interventionCost = abs(potential-actual) * in.Imports * 0.5
		m.reserves -= interventionCost
	}

	m.rate *= 1 + actual
	// REER adjusts for the inflation differential with trading partners.
	m.reer *= 1 + actual - 0.02

	balance := domain.ExternalBalanceResult{
		RemittanceInflow:   in.Remittances,
		FDIInflow:          in.FDI,
		AidInflow:          in.AidLoans,
		ProfitRepatriation: repatriation,
		NetBalance:         overall,
	}

	finance := m.stepTradeFinance(in, reserveMonths)

	return domain.ExchangeRateResult{
		Year:                  year,
		Rate:                  m.rate,
		REER:                  m.reer,
		Depreciation:          actual,
		PotentialDepreciation: potential,
		Intervened:            intervened,
		InterventionCost:      interventionCost,
		Reserves:              m.reserves,
		ReserveMonths:         reserveMonths,
		ExportImpact:          m.cfg.ExportElasticity * actual,
		ImportImpact:          -m.cfg.ImportElasticity * actual,
		RemittanceImpact:      m.cfg.RemittanceSensitivity * actual,
		ExternalBalance:       balance,
		TradeFinance:          finance,
	}
}

// stepTradeFinance evolves letter-of-credit efficiency, correspondent
// banking, trade credit and forex availability.
func (m *ExchangeRateModel) stepTradeFinance(in ExchangeRateInputs, reserveMonths float64) domain.TradeFinanceResult {
	finDev := in.BankingHealth // financial sector development tracks banking health
	volatility := m.cfg.Volatility
	reservesAdequacy := domain.Clamp01(reserveMonths / 6)

	m.lcTimeDays = max(2, m.lcTimeDays*(1-0.05*finDev))
	m.lcCost = max(0.005, m.lcCost*(1-0.03*finDev))
	m.lcRejection = max(0.02, m.lcRejection*(1-0.04*in.BankingHealth))

	m.cbStrength = domain.Clamp(m.cbStrength+0.02*in.BankingHealth-0.01*volatility, 0.3, 0.95)
	m.cbCoverage = domain.Clamp(m.cbCoverage+0.02*finDev, 0.5, 0.98)

	m.creditAccess = domain.Clamp(m.creditAccess+0.03*in.BankingHealth-0.05*volatility, 0.4, 0.95)
	m.forexAdequacy = domain.Clamp(m.forexAdequacy+0.05*reservesAdequacy-0.03*volatility, 0.3, 0.98)

	lcScore := (1-m.lcTimeDays/10)*0.4 + (1-m.lcCost/0.03)*0.3 + (1-m.lcRejection/0.15)*0.3
	cbScore := m.cbStrength*0.5 + m.cbCoverage*0.5

	return domain.TradeFinanceResult{
		LCAccess:              lcScore,
		CorrespondentBanking:  cbScore,
		TradeCreditConditions: m.creditAccess,
		ForexAvailability:     m.forexAdequacy,
		OverallCondition:      lcScore*0.3 + cbScore*0.25 + m.creditAccess*0.25 + m.forexAdequacy*0.2,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
