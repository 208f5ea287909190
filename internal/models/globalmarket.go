package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// competitorProfile tracks one rival exporter's cost and capability position
// relative to Bangladesh (1.0 = parity).
type competitorProfile struct {
	wageLevel      float64
	productivity   float64
	quality        float64
	leadTime       float64
	infrastructure float64
	stability      float64
}

func (p *competitorProfile) score() float64 {
	return (1/p.wageLevel)*0.3 +
		p.productivity*0.2 +
		p.quality*0.2 +
		p.leadTime*0.1 +
		p.infrastructure*0.1 +
		p.stability*0.1
}

// GlobalMarketModel simulates demand in key export markets, competitor
// dynamics and global supply-chain reconfiguration. Its outputs feed every
// export sector's demand and competition inputs.
type GlobalMarketModel struct {
	cfg      config.GlobalMarketsConfig
	scenario config.ScenarioConfig

	competitors map[string]*competitorProfile

	chinaPlusOne      float64
	nearshoringTrend  float64
	resiliencePremium float64

	leadTimes map[string]float64
	jitShare  float64
	bufShare  float64
	strShare  float64

	// sector -> competitor -> growth rate for the year just stepped
	sectorCompetitors map[string]map[string]float64
}

// NewGlobalMarketModel builds the world-market model from configuration.
func NewGlobalMarketModel(cfg config.GlobalMarketsConfig, scenario config.ScenarioConfig) *GlobalMarketModel {
	return &GlobalMarketModel{
		cfg:      cfg,
		scenario: scenario,
		competitors: map[string]*competitorProfile{
			"vietnam":  {wageLevel: 1.2, productivity: 1.4, quality: 1.3, leadTime: 1.2, infrastructure: 1.5, stability: 1.4},
			"india":    {wageLevel: 1.1, productivity: 1.3, quality: 1.2, leadTime: 0.9, infrastructure: 1.1, stability: 1.0},
			"cambodia": {wageLevel: 1.0, productivity: 0.9, quality: 0.9, leadTime: 0.8, infrastructure: 0.8, stability: 0.7},
			"ethiopia": {wageLevel: 0.6, productivity: 0.7, quality: 0.7, leadTime: 0.6, infrastructure: 0.5, stability: 0.5},
			"myanmar":  {wageLevel: 0.8, productivity: 0.7, quality: 0.7, leadTime: 0.7, infrastructure: 0.6, stability: 0.3},
		},
		chinaPlusOne:      cfg.ChinaPlusOne,
		nearshoringTrend:  cfg.NearshoringTrend,
		resiliencePremium: cfg.ResiliencePremium,
		leadTimes: map[string]float64{
			"fast_fashion":       30,
			"seasonal_fashion":   60,
			"basics":             90,
			"technical_products": 75,
		},
		jitShare:          0.4,
		bufShare:          0.4,
		strShare:          0.2,
		sectorCompetitors: map[string]map[string]float64{},
	}
}

// Step advances world-market conditions by one year. tensions is the prior
// year's geopolitical tension level, 0-1.
func (m *GlobalMarketModel) Step(yearIdx, year int, rng *sim.Rand, tensions float64) domain.GlobalMarketResult {
	marketGrowth := map[string]float64{}
	for _, market := range sortedKeys(m.cfg.GDPGrowth) {
		marketGrowth[market] = m.cfg.GDPGrowth[market] + rng.Normal(0, 0.005)
	}

	// Demand grows faster than GDP; demographics and consumer cycles shift
	// individual markets around that.
	weightedDemand := 0.0
	for _, market := range sortedKeys(m.cfg.MarketWeights) {
		gdp, ok := marketGrowth[market]
		if !ok {
			gdp = 0.03
		}
		demand := gdp * 1.2 * m.scenario.GlobalDemand
		switch market {
		case "usa":
			demand += rng.Normal(0, 0.01) // consumer confidence swings
		case "eu":
			demand -= 0.002 // aging population
		case "japan":
			demand -= 0.005
		case "china", "india":
			demand += 0.01 // expanding middle class
		}
		weightedDemand += demand * m.cfg.MarketWeights[market]
	}

	m.sectorCompetitors = map[string]map[string]float64{}
	competitorAvg := map[string]float64{}
	for _, comp := range sortedKeys(m.cfg.CompetitorGrowth) {
		sectors := m.cfg.CompetitorGrowth[comp]
		sum := 0.0
		for _, sector := range sortedKeys(sectors) {
			g := sectors[sector]*m.scenario.CompetitorGrowth + rng.Normal(0, 0.01)
			if m.sectorCompetitors[sector] == nil {
				m.sectorCompetitors[sector] = map[string]float64{}
			}
			m.sectorCompetitors[sector][comp] = g
			sum += g
		}
		competitorAvg[comp] = sum / float64(len(sectors))
	}

	m.evolveCompetitors(competitorAvg)

	weightedCompetitor := 0.0
	totalWeight := 0.0
	for _, comp := range sortedKeys(competitorAvg) {
		p, ok := m.competitors[comp]
		if !ok {
			continue
		}
		w := p.score()
		weightedCompetitor += competitorAvg[comp] * w
		totalWeight += w
	}
	if totalWeight > 0 {
		weightedCompetitor /= totalWeight
	}

	scImpact := m.stepSupplyChain(tensions)

	sectorDemand := map[string]float64{}
	scOpportunity := m.chinaPlusOneBenefit() - m.nearshoringImpact()
	for _, sector := range sortedKeys(m.cfg.DemandGrowth) {
		base := m.cfg.DemandGrowth[sector]
		growth := base * m.scenario.GlobalDemand

		competitorImpact := 0.0
		for _, comp := range sortedKeys(m.cfg.CompetitorGrowth) {
			if g, ok := m.cfg.CompetitorGrowth[comp][sector]; ok {
				competitorImpact -= (g*m.scenario.CompetitorGrowth - base) * 0.2
			}
		}

		scWeight := m.cfg.SectorSupplyChains[sector]
		if scWeight == 0 {
			scWeight = 0.2
		}
		growth += competitorImpact + scOpportunity*scWeight + rng.Normal(0, 0.01)
		sectorDemand[sector] = growth
	}

	return domain.GlobalMarketResult{
		Year:                     year,
		MarketGrowth:             marketGrowth,
		WeightedDemandGrowth:     weightedDemand,
		SectorDemandGrowth:       sectorDemand,
		CompetitorGrowth:         competitorAvg,
		WeightedCompetitorGrowth: weightedCompetitor,
		ChinaPlusOne:             m.chinaPlusOne,
		SupplyChainImpact:        scImpact,
	}
}

// SectorCompetitorGrowth returns the competitor growth rates in one sector
// from the most recent Step.
func (m *GlobalMarketModel) SectorCompetitorGrowth(sector string) map[string]float64 {
	return m.sectorCompetitors[sector]
}

// evolveCompetitors advances rival cost and capability positions. Successful
// exporters see wages rise faster, eroding their cost edge.
func (m *GlobalMarketModel) evolveCompetitors(avgGrowth map[string]float64) {
	for _, name := range sortedKeys(m.competitors) {
		p := m.competitors[name]
		wageGrowth := 0.03
		if g, ok := avgGrowth[name]; ok {
			wageGrowth += g * 0.3
		}
		p.wageLevel *= 1 + wageGrowth
		p.productivity *= 1 + 0.02 + (p.infrastructure-1)*0.01
		p.quality = min(2.0, p.quality*(1+0.02+(p.productivity-1)*0.01))
		infraGrowth := 0.01
		if p.infrastructure < 1.0 {
			infraGrowth = 0.03
		}
		p.infrastructure = min(2.0, p.infrastructure*(1+infraGrowth))
	}
}

// stepSupplyChain advances the reconfiguration trends and returns the net
// impact on Bangladesh as a supplier.
func (m *GlobalMarketModel) stepSupplyChain(tensions float64) float64 {
	mult := m.scenario.SupplyChainDisruption
	m.chinaPlusOne = min(0.95, m.chinaPlusOne+0.02*tensions*mult)
	m.nearshoringTrend = min(0.9, m.nearshoringTrend+0.03*tensions*mult)
	m.resiliencePremium = min(0.5, m.resiliencePremium+0.01*tensions*mult)

	for _, cat := range sortedKeys(m.leadTimes) {
		reduction := 0.01
		if cat == "fast_fashion" || cat == "seasonal_fashion" {
			reduction = 0.02
		}
		m.leadTimes[cat] = max(15, m.leadTimes[cat]*(1-reduction))
	}

	// Buyers hold more buffer stock when tensions run high.
	if tensions > 0.6 {
		m.jitShare = domain.Clamp(m.jitShare-0.03, 0.2, 0.6)
		m.bufShare = domain.Clamp(m.bufShare+0.02, 0.2, 0.6)
		m.strShare = domain.Clamp(m.strShare+0.01, 0.1, 0.4)
	} else {
		m.jitShare = domain.Clamp(m.jitShare+0.01, 0.2, 0.6)
		m.bufShare = domain.Clamp(m.bufShare-0.005, 0.2, 0.6)
		m.strShare = domain.Clamp(m.strShare-0.005, 0.1, 0.4)
	}
	total := m.jitShare + m.bufShare + m.strShare
	m.jitShare /= total
	m.bufShare /= total
	m.strShare /= total

	leadTimeAvg := domain.Mean([]float64{
		m.leadTimes["fast_fashion"], m.leadTimes["seasonal_fashion"],
		m.leadTimes["basics"], m.leadTimes["technical_products"],
	})
	const bangladeshLeadTime = 75.0
	leadTimeImpact := (leadTimeAvg - bangladeshLeadTime) / leadTimeAvg * 0.5

	inventoryImpact := -m.jitShare*0.3 + m.strShare*0.2
	resilienceBenefit := m.resiliencePremium * 0.4 * mult

	return m.chinaPlusOneBenefit() - m.nearshoringImpact() + resilienceBenefit + leadTimeImpact + inventoryImpact
}

func (m *GlobalMarketModel) chinaPlusOneBenefit() float64 {
	const attractiveness = 0.7 // Bangladesh's standing as a China+1 destination
	return m.chinaPlusOne * attractiveness * m.scenario.SupplyChainDisruption
}

func (m *GlobalMarketModel) nearshoringImpact() float64 {
	return m.nearshoringTrend * 0.6 * m.scenario.SupplyChainDisruption
}
