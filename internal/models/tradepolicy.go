package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// ftaState tracks one agreement's implementation progress.
type ftaState struct {
	level     float64
	target    float64
	reduction float64
	sensitive float64
}

// policyImpact is one year's contribution to the cumulative policy scores.
type policyImpact struct {
	yearIdx      int
	marketAccess float64
	domestic     float64
}

// TradePolicyModel simulates preferential access, free trade agreements and
// domestic policy reform. Tariff changes are per-year deltas faced by
// exporters in each destination market.
type TradePolicyModel struct {
	cfg      config.TradePolicyConfig
	scenario config.ScenarioConfig

	ldcImplemented bool
	gspPlusActive  bool
	activeFTAs     map[string]*ftaState
	zones          int
	zoneEffect     float64
	impacts        []policyImpact
}

// NewTradePolicyModel builds the policy model from configuration. SAFTA and
// BIMSTEC start partially implemented; proposed agreements activate
// probabilistically once their window opens.
func NewTradePolicyModel(cfg config.TradePolicyConfig, scenario config.ScenarioConfig) *TradePolicyModel {
	active := map[string]*ftaState{}
	for name, fta := range cfg.FTAs {
		active[name] = &ftaState{
			level:     fta.ImplementationLevel,
			target:    1.0,
			reduction: fta.TariffReduction,
			sensitive: fta.SensitiveListCoverage,
		}
	}
	return &TradePolicyModel{
		cfg:        cfg,
		scenario:   scenario,
		activeFTAs: active,
		zoneEffect: cfg.Domestic.ZoneEffectiveness,
	}
}

// Step advances the policy environment by one year.
func (m *TradePolicyModel) Step(yearIdx, year int, rng *sim.Rand) domain.TradePolicyResult {
	enforcement := m.cfg.Enforcement
	tariffChanges := map[string]float64{}
	var events []domain.PolicyEvent
	marketAccess := 0.0
	domestic := 0.0

	// LDC graduation fires once and removes duty-free access in the
	// preference-granting markets.
	if !m.ldcImplemented && year >= m.cfg.LDCGraduation.Year {
		m.ldcImplemented = true
		sum := 0.0
		for _, market := range sortedKeys(m.cfg.LDCGraduation.TariffIncreases) {
			delta := m.cfg.LDCGraduation.TariffIncreases[market] * m.scenario.TradeBarriers
			tariffChanges[market] += delta
			sum += delta
		}
		impact := -sum / float64(len(m.cfg.LDCGraduation.TariffIncreases)) * enforcement
		marketAccess += impact
		domestic += impact * 0.7
		events = append(events, domain.PolicyEvent{
			Year: year, Kind: "ldc_graduation", Name: "ldc_graduation", Impact: impact,
		})
	}

	// GSP+ can claw back most of the EU preference loss a year after
	// graduation.
	if m.ldcImplemented && !m.gspPlusActive && year >= m.cfg.LDCGraduation.Year+1 {
		qualification := domain.Mean([]float64{0.7, 0.6, 0.7, 0.5}) // governance, rights, labor, environment
		if rng.Float64() < 0.6*qualification {
			m.gspPlusActive = true
			recovery := -m.cfg.LDCGraduation.TariffIncreases["eu"] * 0.7 * m.scenario.TradeBarriers
			tariffChanges["eu"] += recovery
			marketAccess += -recovery * enforcement
			events = append(events, domain.PolicyEvent{
				Year: year, Kind: "gsp_plus", Name: "eu_gsp_plus", Impact: -recovery,
			})
		}
	}

	// Existing agreements deepen gradually; sensitive lists blunt the cuts.
	for _, name := range sortedKeys(m.activeFTAs) {
		fta := m.activeFTAs[name]
		if fta.level >= fta.target {
			continue
		}
		newLevel := min(fta.target, fta.level+0.05*enforcement)
		effective := fta.reduction * (newLevel - fta.level) * (1 - fta.sensitive)
		fta.level = newLevel
		if effective > 0 {
			tariffChanges[name] -= effective
			marketAccess += effective * 0.7
		}
	}

	// Proposed agreements and RCEP accession are probabilistic one-shots.
	for _, country := range sortedKeys(m.cfg.ProposedFTAs) {
		proposal := m.cfg.ProposedFTAs[country]
		if _, ok := m.activeFTAs[country]; ok || year < proposal.Year {
			continue
		}
		if rng.Float64() < proposal.Probability*enforcement {
			m.activeFTAs[country] = &ftaState{level: 0.3, target: 1.0, reduction: 0.5, sensitive: 0.4}
			tariffChanges[country] -= 0.3
			marketAccess += 0.15
			events = append(events, domain.PolicyEvent{
				Year: year, Kind: "fta", Name: country, Impact: 0.15,
			})
		}
	}
	if _, ok := m.activeFTAs["rcep"]; !ok && year >= m.cfg.RCEPAccession.Year {
		if rng.Float64() < m.cfg.RCEPAccession.Probability*enforcement {
			m.activeFTAs["rcep"] = &ftaState{level: 0.1, target: 1.0, reduction: 0.5, sensitive: 0.5}
			tariffChanges["rcep"] -= 0.2
			marketAccess += 0.1
			events = append(events, domain.PolicyEvent{
				Year: year, Kind: "fta", Name: "rcep", Impact: 0.1,
			})
		}
	}

	domestic += m.stepDomestic(enforcement)

	m.impacts = append(m.impacts, policyImpact{yearIdx: yearIdx, marketAccess: marketAccess, domestic: domestic})

	// Recency-weighted cumulative scores anchored at the LDC-era baselines.
	cumAccess, cumDomestic := 0.0, 0.0
	for _, im := range m.impacts {
		w := 1 / (1 + 0.2*float64(yearIdx-im.yearIdx))
		cumAccess += im.marketAccess * w
		cumDomestic += im.domestic * w
	}
	accessScore := domain.Clamp(0.7+cumAccess, 0.1, 1.0)
	domesticScore := domain.Clamp(0.5+cumDomestic, 0.1, 1.0)

	return domain.TradePolicyResult{
		Year:                year,
		Events:              events,
		TariffChanges:       tariffChanges,
		MarketAccessScore:   accessScore,
		DomesticPolicyScore: domesticScore,
		NetImpact:           (accessScore - 0.7) + (domesticScore - 0.5),
		EconomicZones:       m.zones,
	}
}

// stepDomestic advances tariff rationalization, export incentives and the
// economic-zone rollout, returning the year's domestic policy impact.
func (m *TradePolicyModel) stepDomestic(enforcement float64) float64 {
	d := m.cfg.Domestic

	rationalization := -d.TariffRationalization * enforcement * 0.6
	incentives := d.CashIncentiveLevel * float64(len(d.CoveredSectors)) / 10 * enforcement

	newZones := int(float64(d.ZonesPlanned) * d.ZoneImplementationRate * enforcement)
	if remaining := d.ZonesPlanned - m.zones; newZones > remaining {
		newZones = remaining
	}
	m.zones += newZones
	m.zoneEffect = min(0.95, m.zoneEffect+0.02*enforcement)
	zoneImpact := float64(newZones) / float64(d.ZonesPlanned) * m.zoneEffect * 2

	return rationalization + incentives + zoneImpact
}
