package models

import (
	"fmt"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// bilateralState tracks relations with one neighbor on three tracks.
type bilateralState struct {
	political  float64
	economic   float64
	security   float64
	volatility float64
}

func (b *bilateralState) score() float64 {
	return b.political*0.4 + b.economic*0.4 + b.security*0.2
}

// activeWar is a running trade conflict between two third countries.
type activeWar struct {
	parties     string
	startedYear int
	intensity   float64
	duration    int
}

// GeopoliticsModel simulates regional integration, great-power tension and
// trade wars, and their net effect on Bangladesh's trade environment.
type GeopoliticsModel struct {
	cfg      config.GeopoliticsConfig
	scenario config.ScenarioConfig

	bbinLevel      float64
	bobLevel       float64
	saarcProb      float64
	bilateral      map[string]*bilateralState
	crisisSeverity float64

	usChina    float64
	indiaChina float64

	warProbability   float64
	activeWars       []activeWar
	orderDiversion   map[string]float64
	diversification  float64
	sanctionExposure float64
}

// NewGeopoliticsModel builds the geopolitics model from configuration.
func NewGeopoliticsModel(cfg config.GeopoliticsConfig, scenario config.ScenarioConfig) *GeopoliticsModel {
	return &GeopoliticsModel{
		cfg:       cfg,
		scenario:  scenario,
		bbinLevel: cfg.BBINLevel,
		bobLevel:  cfg.BayOfBengalLevel,
		saarcProb: cfg.SAARCRevivalProbability,
		bilateral: map[string]*bilateralState{
			"india":   {political: 0.6, economic: 0.7, security: 0.5, volatility: 0.1},
			"china":   {political: 0.7, economic: 0.8, security: 0.6, volatility: 0.1},
			"myanmar": {political: 0.4, economic: 0.5, security: 0.3, volatility: 0.2},
		},
		crisisSeverity: 0.7,
		usChina:        cfg.USChinaTension,
		indiaChina:     cfg.IndiaChinaTension,
		warProbability: cfg.TradeWarProbability,
		orderDiversion: map[string]float64{
			"rmg":                 0.6,
			"footwear":            0.5,
			"light_manufacturing": 0.4,
			"electronics":         0.3,
			"other":               0.2,
		},
		diversification:  cfg.ExportDiversification,
		sanctionExposure: 0.3,
	}
}

// Tensions returns the current blended global tension level, 0-1. The world
// market and investment models consume it.
func (m *GeopoliticsModel) Tensions() float64 {
	return m.usChina*0.5 + m.indiaChina*0.3 + 0.5*0.2
}

// Step advances the geopolitical environment by one year.
func (m *GeopoliticsModel) Step(yearIdx, year int, rng *sim.Rand) domain.GeopoliticalResult {
	cooperation := 0.5 * m.scenario.RegionalCooperation
	tensions := m.Tensions()

	// Regional initiatives deepen with cooperation.
	m.bbinLevel = min(1.0, m.bbinLevel+m.cfg.BBINImprovement*cooperation)
	m.bobLevel = min(1.0, m.bobLevel+m.cfg.BayOfBengalImprovement*cooperation)

	indiaPakistan := 0.3 + 0.1*rng.Float64()
	m.saarcProb = 0.7*m.saarcProb + 0.3*indiaPakistan
	saarcRevived := rng.Float64() < m.saarcProb && cooperation > 0.6

	bilateral := map[string]float64{}
	for _, country := range sortedKeys(m.bilateral) {
		b := m.bilateral[country]
		variation := rng.Normal(0, b.volatility)
		baseChange := (cooperation - 0.5) * 0.05
		b.political = domain.Clamp(b.political+baseChange+variation, 0.1, 0.9)
		b.economic = domain.Clamp(b.economic+baseChange*0.7+variation*0.5, 0.2, 0.95)
		b.security = domain.Clamp(b.security+baseChange*0.5+variation, 0.1, 0.9)
		bilateral[country] = b.score()
	}

	m.crisisSeverity = max(0.1, m.crisisSeverity-0.02)

	saarcContribution := 0.1
	if saarcRevived {
		saarcContribution = 0.3
	}
	regionalIntegration := m.bbinLevel*0.4 + m.bobLevel*0.3 + saarcContribution*0.3
	stability := (1-m.crisisSeverity)*0.3 +
		bilateral["india"]*0.3 +
		bilateral["china"]*0.2 +
		bilateral["myanmar"]*0.2

	// Great-power tension random walks, India-China partly tracking US-China.
	usChinaChange := m.cfg.USChinaAnnualChange * (1 + (tensions-0.5)*2)
	m.usChina = domain.Clamp(m.usChina+usChinaChange, 0.3, 0.9)
	indiaChinaChange := m.cfg.IndiaChinaAnnualChange * (1 + (tensions-0.5)*1.5)
	m.indiaChina = domain.Clamp(m.indiaChina+indiaChinaChange, 0.3, 0.9)

	warResult := m.stepTradeWars(year, rng, tensions, cooperation)

	briImpact := m.cfg.BRIParticipation * m.cfg.BRIImplementationRate * (1 - 0.3*tensions)

	opportunity := regionalIntegration*0.4 +
		(bilateral["china"]*0.5+bilateral["india"]*0.5)*0.3 +
		warResult.opportunity*0.2 +
		briImpact*0.1
	vulnerability := (1-stability)*0.3 + tensions*0.4 + warResult.vulnerability*0.3

	return domain.GeopoliticalResult{
		Year:                year,
		RegionalIntegration: regionalIntegration,
		SAARCRevived:        saarcRevived,
		BilateralRelations:  bilateral,
		USChinaTension:      m.usChina,
		IndiaChinaTension:   m.indiaChina,
		SupplyChainShift:    warResult.tariffEscalation,
		BRIImpact:           briImpact,
		TradeWarProbability: m.warProbability,
		ActiveTradeWars:     warResult.wars,
		SectorDiversion:     warResult.sectorDiversion,
		Opportunity:         opportunity,
		Vulnerability:       vulnerability,
		NetImpact:           opportunity - vulnerability,
	}
}

type tradeWarOutcome struct {
	wars             []domain.TradeWar
	sectorDiversion  map[string]float64
	tariffEscalation float64
	opportunity      float64
	vulnerability    float64
}

// stepTradeWars starts, evolves and retires trade conflicts and derives the
// order-diversion opportunity they create for Bangladesh.
func (m *GeopoliticsModel) stepTradeWars(year int, rng *sim.Rand, tensions, cooperation float64) tradeWarOutcome {
	change := m.cfg.TradeWarAnnualChange + (tensions-0.5)*0.1
	m.warProbability = domain.Clamp(m.warProbability+change, 0.05, 0.8)

	potential := []struct {
		a, b      string
		intensity float64
	}{
		{"us", "china", 0.7},
		{"us", "eu", 0.5},
		{"china", "india", 0.6},
		{"china", "vietnam", 0.4},
	}
	for _, pc := range potential {
		id := fmt.Sprintf("%s_%s", pc.a, pc.b)
		if m.warActive(id) {
			continue
		}
		prob := m.warProbability
		if pc.a == "us" && pc.b == "china" {
			prob *= 1.5
		}
		if rng.Float64() < prob {
			m.activeWars = append(m.activeWars, activeWar{
				parties:     id,
				startedYear: year,
				intensity:   pc.intensity * (0.8 + 0.4*rng.Float64()),
				duration:    2 + rng.IntN(4),
			})
		}
	}

	surviving := m.activeWars[:0]
	totalIntensity := 0.0
	var wars []domain.TradeWar
	for i := range m.activeWars {
		w := m.activeWars[i]
		if year-w.startedYear >= w.duration {
			continue
		}
		w.intensity = domain.Clamp(w.intensity+rng.Normal(0, 0.1), 0.1, 0.9)
		surviving = append(surviving, w)
		totalIntensity += w.intensity
		wars = append(wars, domain.TradeWar{
			Parties:        w.parties,
			Intensity:      w.intensity,
			RemainingYears: w.duration - (year - w.startedYear),
		})
	}
	m.activeWars = surviving

	for _, sector := range sortedKeys(m.orderDiversion) {
		m.orderDiversion[sector] = min(0.9, m.orderDiversion[sector]+0.02*rng.Float64())
	}

	m.diversification = domain.Clamp(m.diversification+0.02*cooperation-0.01*tensions, 0.3, 0.9)
	m.sanctionExposure = domain.Clamp(m.sanctionExposure+0.01*tensions-0.02*m.diversification, 0.1, 0.7)

	tariffEscalation := 0.0
	if len(m.activeWars) > 0 {
		tariffEscalation = 0.1 * totalIntensity
	}

	sectorDiversion := map[string]float64{}
	sum := 0.0
	for _, sector := range sortedKeys(m.orderDiversion) {
		op := m.orderDiversion[sector] * totalIntensity * 0.5
		sectorDiversion[sector] = op
		sum += op
	}
	weightedOpportunity := sum / float64(len(m.orderDiversion))
	sanctionRisk := m.sanctionExposure * totalIntensity * 0.3

	return tradeWarOutcome{
		wars:             wars,
		sectorDiversion:  sectorDiversion,
		tariffEscalation: tariffEscalation,
		opportunity:      weightedOpportunity*0.7 - sanctionRisk*0.3,
		vulnerability: (1-m.diversification)*0.5 +
			m.sanctionExposure*0.3 +
			tariffEscalation*0.2,
	}
}

func (m *GeopoliticsModel) warActive(id string) bool {
	for _, w := range m.activeWars {
		if w.parties == id {
			return true
		}
	}
	return false
}
