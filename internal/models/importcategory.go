package models

import (
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// ImportInputs carries the exogenous signals an import category consumes in a
// year, assembled by the engine from the macro models.
type ImportInputs struct {
	DomesticProductionGrowth   float64
	ConsumptionDemandGrowth    float64
	ExchangeRateImpact         float64 // signed, from the currency model
	TariffChanges              float64 // average import tariff delta
	GlobalPriceChanges         map[string]float64
	LogisticsCost              float64
	DomesticCapacityInvestment float64

	// Category-specific drivers.
	RMGGrowth                  float64 // industrial inputs track the garment sector
	LogisticsPerformance       float64
	IndustrialPolicySupport    float64
	TechTransfer               float64
	GDPPerCapitaGrowth         float64
	UrbanizationRate           float64
	MiddleClassGrowth          float64
	DomesticQualityImprovement float64
	AgriculturalProductivity   float64
	EconomicGrowth             float64
	IndustrializationRate      float64
	GlobalEnergyPriceChange    float64
	RenewableInvestment        float64
	EnergyPolicyStrength       float64
}

// ImportCategoryModel advances one import dependency category year by year.
// Import volume follows total consumption net of the domestic production
// share, which itself shifts with capacity investment and price-driven
// substitution.
type ImportCategoryModel struct {
	id       string
	cfg      config.ImportConfig
	adjuster ImportAdjuster

	volumes        map[int]float64
	domesticRatios map[int]float64
}

// NewImportCategoryModel builds an import category model from its
// configuration, choosing the adjustment strategy from the configured kind.
func NewImportCategoryModel(id string, cfg config.ImportConfig) *ImportCategoryModel {
	return &ImportCategoryModel{
		id:             id,
		cfg:            cfg,
		adjuster:       newImportAdjuster(cfg.Kind),
		volumes:        map[int]float64{},
		domesticRatios: map[int]float64{},
	}
}

// ID returns the category identifier.
func (m *ImportCategoryModel) ID() string { return m.id }

// Step simulates one year of import demand for this category.
func (m *ImportCategoryModel) Step(yearIdx, year int, rng *sim.Rand, in ImportInputs) domain.ImportResult {
	prevVolume := m.lookup(m.volumes, yearIdx-1, m.cfg.InitialVolume)
	prevRatio := m.lookup(m.domesticRatios, yearIdx-1, m.cfg.DomesticProductionRatio)

	// Consumption implied by last year's imports and domestic share.
	prevConsumption := prevVolume / (1 - prevRatio)
	newConsumption := prevConsumption * (1 + in.ConsumptionDemandGrowth)

	priceImpact := in.ExchangeRateImpact +
		in.TariffChanges +
		in.GlobalPriceChanges[m.id] +
		in.LogisticsCost*0.5
	elasticityEffect := -priceImpact * m.cfg.PriceSensitivity

	ratioChange := in.DomesticProductionGrowth*0.3 + in.DomesticCapacityInvestment*0.2
	if priceImpact > 0 {
		// Pricier imports push substitution toward domestic production;
		// cheaper imports unwind it at half strength.
		ratioChange += priceImpact * m.cfg.SubstitutionElasticity
	} else {
		ratioChange += priceImpact * m.cfg.SubstitutionElasticity * 0.5
	}
	newRatio := domain.Clamp(prevRatio+ratioChange*0.05, 0.1, 0.9)

	newVolume := newConsumption * (1 - newRatio)
	newVolume *= 1 + elasticityEffect
	newVolume *= 1 + rng.Normal(0, growthNoiseSigma)

	if m.adjuster != nil {
		newVolume = m.adjuster.Adjust(rng, in, newVolume)
	}

	m.volumes[yearIdx] = newVolume
	m.domesticRatios[yearIdx] = newRatio

	return domain.ImportResult{
		Category:         m.id,
		Year:             year,
		ImportVolume:     newVolume,
		GrowthRate:       newVolume/prevVolume - 1,
		DomesticShare:    newRatio,
		TotalConsumption: newConsumption,
		PriceImpact:      priceImpact,
	}
}

func (m *ImportCategoryModel) lookup(hist map[int]float64, idx int, fallback float64) float64 {
	if v, ok := hist[idx]; ok {
		return v
	}
	return fallback
}
