package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// ComplianceInputs carries the regulatory and buyer pressure the compliance
// model responds to in a year, both 0-1.
type ComplianceInputs struct {
	RegulatoryPressure float64
	BuyerRequirements  float64
}

// ComplianceModel simulates labor, environmental and product standards.
// Compliance never regresses; cost and premium are signed growth-rate
// contributions for the export sectors.
type ComplianceModel struct {
	cfg      config.ComplianceConfig
	scenario config.ScenarioConfig

	minimumWage float64
	livingWage  float64
	laborAreas  map[string]float64
	unrestRisk  float64

	greenAdoption   float64
	envAreas        map[string]float64
	carbonIntensity float64

	testingCapacity float64
	capability      float64
	sectorReqs      map[string]float64
	sectorComp      map[string]float64
	certifications  map[string]float64
}

// NewComplianceModel builds the compliance model from configuration.
func NewComplianceModel(cfg config.ComplianceConfig, scenario config.ScenarioConfig) *ComplianceModel {
	return &ComplianceModel{
		cfg:         cfg,
		scenario:    scenario,
		minimumWage: cfg.Labor.InitialMinimumWage,
		livingWage:  cfg.Labor.InitialMinimumWage * 2,
		laborAreas: map[string]float64{
			"wage":          0.7,
			"safety":        0.8,
			"working_hours": 0.6,
			"child_labor":   0.9,
			"union_rights":  0.5,
		},
		unrestRisk:    0.3,
		greenAdoption: cfg.Environmental.CertificationAdoption * 2,
		envAreas: map[string]float64{
			"water_treatment":     0.6,
			"air_emissions":       0.5,
			"chemical_management": 0.7,
			"waste_management":    0.6,
			"energy_efficiency":   0.4,
		},
		carbonIntensity: 0.8,
		testingCapacity: 0.5,
		capability:      0.6,
		sectorReqs: map[string]float64{
			"rmg":         0.6,
			"pharma":      0.8,
			"food":        0.7,
			"electronics": 0.75,
			"other":       0.6,
		},
		sectorComp: map[string]float64{
			"rmg":         0.7,
			"pharma":      0.8,
			"food":        0.6,
			"electronics": 0.55,
			"other":       0.6,
		},
		certifications: map[string]float64{
			"iso9001":  0.4,
			"iso14001": 0.3,
			"halal":    0.5,
			"gmp":      0.6,
			"other":    0.3,
		},
	}
}

// Step advances the compliance environment by one year.
func (m *ComplianceModel) Step(yearIdx, year int, rng *sim.Rand, in ComplianceInputs) domain.ComplianceResult {
	laborCost, laborPremium, laborLevel := m.stepLabor(rng, in)
	envCost, envPremium, envLevel, carbonTax := m.stepEnvironmental(rng, year, in)
	prodCost, prodPremium, prodLevel := m.stepProduct(in)

	totalCost := (laborCost*0.4 + envCost*0.3 + prodCost*0.3) * m.scenario.ComplianceCost
	totalPremium := laborPremium*0.3 + envPremium*0.4 + prodPremium*0.3

	// RMG bears the brunt of labor and environmental scrutiny; emerging
	// sectors face product standards instead.
	sectorCosts := map[string]float64{
		"rmg":           laborCost*0.5 + envCost*0.3,
		"leather":       envCost*0.5 + laborCost*0.2,
		"pharma":        prodCost * 0.6,
		"it_services":   prodCost * 0.2,
		"jute":          envCost * 0.2,
		"agro_products": prodCost * 0.4,
	}

	return domain.ComplianceResult{
		Year:                    year,
		LaborCompliance:         laborLevel,
		EnvironmentalCompliance: envLevel,
		ProductCompliance:       prodLevel,
		CarbonTaxRate:           carbonTax,
		MinimumWage:             m.minimumWage,
		UnrestRisk:              m.unrestRisk,
		TotalCost:               totalCost,
		MarketPremium:           totalPremium,
		NetImpact:               totalPremium - totalCost,
		SectorCosts:             sectorCosts,
	}
}

func (m *ComplianceModel) stepLabor(rng *sim.Rand, in ComplianceInputs) (cost, premium, level float64) {
	wageGrowth := m.cfg.Labor.MinimumWageGrowth * (0.8 + 0.4*in.RegulatoryPressure)
	m.minimumWage *= 1 + wageGrowth
	m.livingWage *= 1.04
	livingWageGap := max(0, (m.livingWage-m.minimumWage)/m.livingWage)

	for _, area := range sortedKeys(m.laborAreas) {
		cur := m.laborAreas[area]
		improvement := (0.02*in.RegulatoryPressure+0.03*in.BuyerRequirements)*(1-cur*0.5) + rng.Normal(0, 0.01)
		m.laborAreas[area] = min(0.98, max(cur+improvement, cur))
	}
	// The mean can round an ULP above the per-area cap.
	level = min(0.98, m.meanOf(m.laborAreas))

	cost = m.cfg.Labor.ComplianceCost*level + wageGrowth*0.5
	premium = level*0.02 + in.BuyerRequirements*0.04

	riskChange := -0.02*wageGrowth - 0.01*(level-0.7) + 0.02*livingWageGap
	m.unrestRisk = domain.Clamp(m.unrestRisk+riskChange, 0.05, 0.8)
	return cost, premium, level
}

func (m *ComplianceModel) stepEnvironmental(rng *sim.Rand, year int, in ComplianceInputs) (cost, premium, level, carbonTax float64) {
	env := m.cfg.Environmental
	taxActive := year >= env.CarbonTaxYear
	if taxActive {
		carbonTax = (env.CarbonTaxInitial + float64(year-env.CarbonTaxYear)*env.CarbonTaxAnnualIncrease) *
			m.scenario.CarbonBorderTax
	}

	adoptionGain := env.CertificationAdoption * (0.8 + 0.4*in.BuyerRequirements)
	if taxActive {
		adoptionGain *= 1 + carbonTax*5
	}
	m.greenAdoption = min(0.9, m.greenAdoption+adoptionGain)

	for _, area := range sortedKeys(m.envAreas) {
		cur := m.envAreas[area]
		improvement := 0.02*in.RegulatoryPressure + 0.02*in.BuyerRequirements
		if taxActive && (area == "air_emissions" || area == "energy_efficiency") {
			improvement += carbonTax * 0.5
		}
		improvement = improvement*(1-cur*0.5) + rng.Normal(0, 0.01)
		m.envAreas[area] = min(0.95, max(cur+improvement, cur))
	}
	level = min(0.95, m.meanOf(m.envAreas))

	carbonCut := 0.01*(m.envAreas["energy_efficiency"]-0.4)*2 + 0.005*(m.envAreas["air_emissions"]-0.5)*2
	if taxActive {
		carbonCut += carbonTax * 0.3
	}
	m.carbonIntensity = max(0.4, m.carbonIntensity-carbonCut)

	cost = 0.02*level + m.greenAdoption*0.01
	if taxActive {
		cost += carbonTax * m.carbonIntensity
	}
	premium = m.greenAdoption*env.GreenPremium + level*0.03*in.BuyerRequirements
	return cost, premium, level, carbonTax
}

func (m *ComplianceModel) stepProduct(in ComplianceInputs) (cost, premium, level float64) {
	p := m.cfg.Product

	capacityGain := p.TestingCapacityImprovement * (0.8 + 0.4*in.RegulatoryPressure)
	m.testingCapacity = min(0.95, m.testingCapacity+capacityGain*(1-m.testingCapacity*0.5))

	capabilityGain := p.ComplianceCapabilityImprovement * (0.8 + 0.4*in.BuyerRequirements)
	m.capability = min(0.95, m.capability+capabilityGain*(1-m.capability*0.5))

	for _, sector := range sortedKeys(m.sectorReqs) {
		req := m.sectorReqs[sector]
		req = min(0.95, req+p.TechnicalBarriersGrowth*(0.8+0.4*in.BuyerRequirements)*req)

		comp := m.sectorComp[sector]
		gap := req - comp
		improvement := 0.03*m.testingCapacity + 0.04*m.capability + 0.02*in.RegulatoryPressure - 0.05*gap
		comp = domain.Clamp(comp+improvement, 0.3, 0.95)

		m.sectorReqs[sector] = req
		m.sectorComp[sector] = comp
	}

	for _, cert := range sortedKeys(m.certifications) {
		adoption := m.certifications[cert]
		gain := 0.03 * (0.8 + 0.4*in.BuyerRequirements) * (0.8 + 0.4*m.capability)
		m.certifications[cert] = min(0.9, adoption+gain*(1-adoption*0.7))
	}

	avgReq := m.meanOf(m.sectorReqs)
	level = min(0.95, m.meanOf(m.sectorComp))
	avgCert := m.meanOf(m.certifications)

	cost = 0.02*avgReq + 0.03*(avgReq-level) + 0.01*avgCert
	premium = 0.03*avgCert + 0.04*level*in.BuyerRequirements
	return cost, premium, level
}

// meanOf averages in key order; summing in map order would make the mean
// differ by an ULP between reruns.
func (m *ComplianceModel) meanOf(vals map[string]float64) float64 {
	sum := 0.0
	for _, k := range sortedKeys(vals) {
		sum += vals[k]
	}
	return sum / float64(len(vals))
}
