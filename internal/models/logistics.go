package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// teuPerMillionUSD approximates container volume implied by trade value.
const teuPerMillionUSD = 0.01

// LogisticsInputs carries the exogenous signals the logistics model consumes
// in a year.
type LogisticsInputs struct {
	TradeVolume              float64 // exports + imports, million USD
	InfrastructureInvestment float64 // 0-1
	PolicyEffectiveness      float64 // 0-1
	WeatherDisruption        float64 // 0-1
	LaborUnrest              float64 // 0-1
	ShippingDisruption       float64 // 0-1
}

// portState is one seaport's evolving infrastructure.
type portState struct {
	name        string
	cfg         config.PortConfig
	operational bool
	capacity    float64
	efficiency  float64
}

// LogisticsModel simulates ports, inland transport and trade facilitation.
// Its overall performance score feeds sector competitiveness and its cost
// share feeds import prices.
type LogisticsModel struct {
	cfg      config.LogisticsConfig
	scenario config.ScenarioConfig

	ports []*portState

	roadQuality  float64
	roadCapacity float64
	railShare    float64
	railQuality  float64
	waterShare   float64
	waterQuality float64

	customsLevel   float64
	singleWindow   float64
	paperlessLevel float64
	docTimeDays    float64
	docCostUSD     float64
	borderTimeDays float64
	borderCostUSD  float64
	corruption     float64
}

// NewLogisticsModel builds the logistics model from configuration. Ports with
// a future start year stay idle until it arrives.
func NewLogisticsModel(cfg config.LogisticsConfig, scenario config.ScenarioConfig, startYear int) *LogisticsModel {
	m := &LogisticsModel{
		cfg:            cfg,
		scenario:       scenario,
		roadQuality:    cfg.Transport.RoadQuality,
		roadCapacity:   1.0,
		railShare:      cfg.Transport.RailShare,
		railQuality:    0.5,
		waterShare:     cfg.Transport.WaterwayShare,
		waterQuality:   0.6,
		customsLevel:   cfg.Facilitation.CustomsLevel,
		paperlessLevel: cfg.Facilitation.PaperlessLevel,
		docTimeDays:    3.0,
		docCostUSD:     200.0,
		borderTimeDays: 5.0,
		borderCostUSD:  400.0,
		corruption:     0.4,
	}
	for _, name := range sortedKeys(cfg.Ports) {
		pc := cfg.Ports[name]
		p := &portState{name: name, cfg: pc}
		if pc.StartYear == 0 || pc.StartYear <= startYear {
			p.operational = true
			p.capacity = pc.InitialCapacity
			p.efficiency = pc.Efficiency
		}
		m.ports = append(m.ports, p)
	}
	return m
}

// Step advances logistics infrastructure by one year.
func (m *LogisticsModel) Step(yearIdx, year int, rng *sim.Rand, in LogisticsInputs) domain.LogisticsResult {
	investment := in.InfrastructureInvestment * m.scenario.Infrastructure
	policy := in.PolicyEffectiveness * m.scenario.TradeFacilitation

	containerVolume := in.TradeVolume * teuPerMillionUSD

	portResults, portScore := m.stepPorts(year, containerVolume, investment, policy, in)
	transportScore := m.stepTransport(investment, policy, in)
	facilitationScore := m.stepFacilitation(year, policy)

	overall := 0.4*portScore + 0.35*transportScore + 0.25*facilitationScore

	cost := max(0.05, 0.15-(overall-0.5)*0.1)
	delay := max(2, 10-(overall-0.5)*5)
	reliability := min(0.98, 0.7+(overall-0.5)*0.2)

	return domain.LogisticsResult{
		Year:               year,
		Ports:              portResults,
		PortScore:          portScore,
		TransportScore:     transportScore,
		FacilitationScore:  facilitationScore,
		OverallPerformance: overall,
		LogisticsCost:      cost,
		TimeDelayDays:      delay,
		Reliability:        reliability,
	}
}

// stepPorts evolves each port and allocates traffic by capacity, efficiency
// and congestion. Market shares are normalized across operational ports.
func (m *LogisticsModel) stepPorts(year int, containerVolume, investment, policy float64, in LogisticsInputs) ([]domain.PortResult, float64) {
	disruption := 0.5*in.WeatherDisruption + 0.3*in.LaborUnrest + 0.2*in.ShippingDisruption

	// First pass: open ports, apply expansions and efficiency gains, compute
	// raw shares.
	rawShares := make([]float64, len(m.ports))
	rawTotal := 0.0
	for i, p := range m.ports {
		if !p.operational && p.cfg.StartYear != 0 && year >= p.cfg.StartYear {
			p.operational = true
			p.capacity = p.cfg.InitialCapacity
			p.efficiency = p.cfg.Efficiency
		}
		if !p.operational {
			continue
		}
		if expanded, ok := p.cfg.Expansions[year]; ok {
			p.capacity = expanded
		}
		gain := p.cfg.EfficiencyImprovement * investment * policy * (1 - min(0.5, p.efficiency))
		p.efficiency = min(0.95, p.efficiency+gain)

		rawShares[i] = p.capacity * p.efficiency
		rawTotal += rawShares[i]
	}

	results := make([]domain.PortResult, 0, len(m.ports))
	weightedEff := 0.0
	totalCapacity := 0.0
	totalUtilized := 0.0
	for i, p := range m.ports {
		if !p.operational {
			results = append(results, domain.PortResult{Name: p.name})
			continue
		}
		share := 0.0
		if rawTotal > 0 {
			share = rawShares[i] / rawTotal
		}

		utilized := min(containerVolume*share, p.capacity)
		utilization := 1.0
		if p.capacity > 0 {
			utilization = utilized / p.capacity
		}
		congestion := 0.0
		if utilization > 0.8 {
			congestion = (utilization - 0.8) / 0.2
		}

		waiting := p.cfg.WaitingTimeDays * (1 + congestion*2) * (1 + disruption) * (1 - p.efficiency*0.3)

		results = append(results, domain.PortResult{
			Name:            p.name,
			Operational:     true,
			Capacity:        p.capacity,
			Utilization:     utilization,
			Efficiency:      p.efficiency,
			Congestion:      congestion,
			WaitingTimeDays: waiting,
			MarketShare:     share,
		})

		weightedEff += p.efficiency * share
		totalCapacity += p.capacity
		totalUtilized += utilized
	}

	score := 0.0
	if totalCapacity > 0 {
		score = weightedEff * (1 - min(1, totalUtilized/totalCapacity))
	}
	return results, score
}

// stepTransport evolves the road, rail and waterway network and returns the
// modal-share weighted performance.
func (m *LogisticsModel) stepTransport(investment, policy float64, in LogisticsInputs) float64 {
	t := m.cfg.Transport

	m.roadQuality = min(0.95, m.roadQuality+t.RoadImprovement*investment*policy)
	m.roadCapacity *= 1 + t.RoadCapacityGrowth*investment

	m.railShare += min(t.RailTargetShare-m.railShare, t.RailAnnualIncrease*investment*policy)
	m.railQuality = min(0.9, m.railQuality+0.03*investment*policy)

	m.waterShare += min(t.WaterwayTargetShare-m.waterShare, t.WaterwayAnnualIncrease*investment*policy)
	m.waterQuality = min(0.85, m.waterQuality+0.02*investment*policy)

	roadShare := max(0.3, 1-m.railShare-m.waterShare)

	roadDisruption := 0.7*in.WeatherDisruption + 0.3*in.LaborUnrest
	railDisruption := 0.5*in.WeatherDisruption + 0.5*in.LaborUnrest
	waterDisruption := 0.9*in.WeatherDisruption + 0.1*in.LaborUnrest

	roadPerf := m.roadQuality * (1 - roadDisruption) * min(1, m.roadCapacity/roadShare)
	railPerf := m.railQuality * (1 - railDisruption)
	waterPerf := m.waterQuality * (1 - waterDisruption)

	return roadShare*roadPerf + m.railShare*railPerf + m.waterShare*waterPerf
}

// stepFacilitation evolves customs modernization, the single window and
// paperless trade, and returns the weighted facilitation score.
func (m *LogisticsModel) stepFacilitation(year int, policy float64) float64 {
	f := m.cfg.Facilitation

	customsGain := min(f.CustomsTarget-m.customsLevel, f.CustomsImprovement*policy)
	m.customsLevel += customsGain

	if year >= f.SingleWindowYear {
		m.singleWindow += min(1-m.singleWindow, f.SingleWindowAdoptionRate*policy)
	}
	swScore := m.singleWindow * f.SingleWindowEfficiencyGain

	paperlessGain := min(f.PaperlessTarget-m.paperlessLevel, f.PaperlessImprovement*policy)
	m.paperlessLevel += paperlessGain

	docTimeCut := (0.4*customsGain + 0.3*swScore + 0.3*paperlessGain) * 0.5
	docCostCut := (0.3*customsGain + 0.4*swScore + 0.3*paperlessGain) * 0.3
	m.docTimeDays = max(1.0, m.docTimeDays*(1-docTimeCut))
	m.docCostUSD = max(50.0, m.docCostUSD*(1-docCostCut))

	borderTimeCut := (0.5*customsGain + 0.2*swScore + 0.3*paperlessGain) * 0.4
	borderCostCut := (0.4*customsGain + 0.3*swScore + 0.3*paperlessGain) * 0.25
	m.borderTimeDays = max(2.0, m.borderTimeDays*(1-borderTimeCut))
	m.borderCostUSD = max(100.0, m.borderCostUSD*(1-borderCostCut))

	corruptionCut := (0.4*customsGain + 0.3*swScore + 0.3*paperlessGain + 0.2*policy) * 0.2
	m.corruption = max(0.05, m.corruption*(1-corruptionCut))

	docTimeScore := 1 - min(1, m.docTimeDays/5)
	docCostScore := 1 - min(1, m.docCostUSD/300)
	borderTimeScore := 1 - min(1, m.borderTimeDays/7)
	borderCostScore := 1 - min(1, m.borderCostUSD/500)

	return 0.2*m.customsLevel +
		0.15*swScore +
		0.15*m.paperlessLevel +
		0.1*docTimeScore +
		0.1*docCostScore +
		0.1*borderTimeScore +
		0.1*borderCostScore +
		0.1*(1-m.corruption)
}
