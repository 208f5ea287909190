package models

import (
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/sim"
)

// ImportAdjuster applies a category-specialization multiplier after the
// shared consumption update. Like sector adjusters, these are stateful.
type ImportAdjuster interface {
	Adjust(rng *sim.Rand, in ImportInputs, volume float64) float64
}

// newImportAdjuster selects the strategy for a configured category kind.
// "base" and unknown kinds get no adjustment.
func newImportAdjuster(kind string) ImportAdjuster {
	switch kind {
	case "industrial":
		return &industrialAdjuster{
			rmgDependency:   0.7,
			localContent:    0.2,
			justInTimeRatio: 0.4,
			inventoryPolicy: 0.5,
		}
	case "consumer":
		return &consumerAdjuster{
			essentialShare:   0.6,
			luxuryShare:      0.2,
			electronicsShare: 0.3,
			foodShare:        0.25,
			competingProd:    0.3,
			importPreference: 0.6,
		}
	case "energy":
		return &energyAdjuster{
			fossilDependency: 0.85,
			renewableLevel:   0.1,
			gasDepletion:     0.03,
			efficiency:       0.4,
			reserveMonths:    1.5,
		}
	default:
		return nil
	}
}

// industrialAdjuster ties raw material and machinery imports to garment
// sector growth, local content development and just-in-time requirements.
type industrialAdjuster struct {
	rmgDependency   float64
	localContent    float64
	justInTimeRatio float64
	inventoryPolicy float64
}

func (a *industrialAdjuster) Adjust(_ *sim.Rand, in ImportInputs, volume float64) float64 {
	rmgImpact := in.RMGGrowth * a.rmgDependency

	a.localContent = min(0.8, a.localContent+0.02*in.IndustrialPolicySupport+0.01*in.TechTransfer)

	jitChange := (in.LogisticsPerformance-0.5)*0.1 + (a.inventoryPolicy-0.5)*0.05
	a.justInTimeRatio = max(0.2, min(0.8, a.justInTimeRatio+jitChange))

	jitImpact := 0.05 * (a.justInTimeRatio - 0.4)
	localContentImpact := -0.1 * (a.localContent - 0.2)

	return volume * (1 + rmgImpact + jitImpact + localContentImpact)
}

// consumerAdjuster models income-driven demand composition: luxury and
// electronics shares grow with incomes while domestic quality improvements
// erode import preference.
type consumerAdjuster struct {
	essentialShare   float64
	luxuryShare      float64
	electronicsShare float64
	foodShare        float64
	competingProd    float64
	importPreference float64
}

func (a *consumerAdjuster) Adjust(_ *sim.Rand, in ImportInputs, volume float64) float64 {
	luxuryGrowth := in.GDPPerCapitaGrowth * 2 * in.MiddleClassGrowth * 1.5
	luxuryImpact := luxuryGrowth * a.luxuryShare

	essentialImpact := in.GDPPerCapitaGrowth * 0.5 * a.essentialShare

	electronicsGrowth := in.GDPPerCapitaGrowth*1.8 + in.UrbanizationRate*0.2
	electronicsImpact := electronicsGrowth * a.electronicsShare

	foodImpact := (in.GDPPerCapitaGrowth*0.3 - in.AgriculturalProductivity) * a.foodShare

	prefChange := in.MiddleClassGrowth*0.1 - in.DomesticQualityImprovement*0.2
	a.importPreference = domain.Clamp(a.importPreference+prefChange, 0.3, 0.9)
	prefImpact := 0.1 * (a.importPreference - 0.6)

	a.competingProd = min(0.8, a.competingProd+in.DomesticQualityImprovement*0.3)
	competingImpact := -0.15 * (a.competingProd - 0.3)

	total := luxuryImpact + essentialImpact + electronicsImpact + foodImpact + prefImpact + competingImpact
	volume *= 1 + total

	// Shares drift toward the faster-growing segments, essential goods
	// absorbing the residual.
	a.luxuryShare = domain.Clamp(a.luxuryShare+(luxuryGrowth-in.GDPPerCapitaGrowth)*0.02, 0.1, 0.4)
	a.electronicsShare = domain.Clamp(a.electronicsShare+(electronicsGrowth-in.GDPPerCapitaGrowth)*0.02, 0.2, 0.5)
	if a.foodShare > 0 {
		foodShareChange := (foodImpact/a.foodShare - in.GDPPerCapitaGrowth) * 0.01
		a.foodShare = domain.Clamp(a.foodShare+foodShareChange, 0.1, 0.4)
	}
	a.essentialShare = max(0.3, 1-a.luxuryShare-a.electronicsShare-a.foodShare)

	return volume
}

// energyAdjuster models fuel imports under domestic gas depletion, renewable
// transition and strategic reserve management.
type energyAdjuster struct {
	fossilDependency float64
	renewableLevel   float64
	gasDepletion     float64
	efficiency       float64
	reserveMonths    float64
}

func (a *energyAdjuster) Adjust(rng *sim.Rand, in ImportInputs, volume float64) float64 {
	demandGrowth := in.EconomicGrowth*1.2 + in.IndustrializationRate*0.5

	renewableGrowth := 0.03*in.RenewableInvestment + 0.01*in.EnergyPolicyStrength
	a.renewableLevel = min(0.6, a.renewableLevel+renewableGrowth)
	renewableImpact := -0.2 * (a.renewableLevel - 0.1)

	a.efficiency = min(0.8, a.efficiency+0.02*in.EnergyPolicyStrength)
	efficiencyImpact := -0.15 * (a.efficiency - 0.4)

	// Domestic gas fields deplete while output remains, raising import need.
	a.gasDepletion = min(0.1, a.gasDepletion+0.002)
	depletionImpact := a.gasDepletion

	a.fossilDependency = max(0.4, a.fossilDependency-a.renewableLevel*0.1)

	volatilityImpact := in.GlobalEnergyPriceChange * 2

	strategicImpact := 0.0
	switch {
	case in.GlobalEnergyPriceChange < -0.1:
		// Cheap fuel: stock up reserves.
		change := min(0.5, -in.GlobalEnergyPriceChange)
		a.reserveMonths += change
		strategicImpact = change * 0.1
	case in.GlobalEnergyPriceChange > 0.1:
		// Expensive fuel: possibly draw down reserves.
		useProb := min(0.7, in.GlobalEnergyPriceChange)
		if rng.Float64() < useProb && a.reserveMonths > 1 {
			change := -min(0.5, a.reserveMonths-1)
			a.reserveMonths += change
			strategicImpact = change * 0.1
		}
	}

	total := demandGrowth + renewableImpact + efficiencyImpact + depletionImpact + volatilityImpact + strategicImpact
	return volume * (1 + total)
}
