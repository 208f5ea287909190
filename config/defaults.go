package config

// setDefaults fills every section the YAML file left empty with the baseline
// Bangladesh parameters. Monetary values are million USD unless noted.
func (c *Config) setDefaults() {
	c.setSimulationDefaults()
	if len(c.Sectors) == 0 {
		c.Sectors = defaultSectors()
	}
	if len(c.Imports) == 0 {
		c.Imports = defaultImports()
	}
	c.setTradePolicyDefaults()
	c.setLogisticsDefaults()
	c.setExchangeRateDefaults()
	c.setGlobalMarketDefaults()
	c.setGeopoliticsDefaults()
	c.setComplianceDefaults()
	c.setStructuralDefaults()
	c.setDigitalDefaults()
	c.setServicesDefaults()
	c.setInvestmentDefaults()
	c.setInfraDefaults()
	if len(c.Scenarios) == 0 {
		c.Scenarios = defaultScenarios()
	}
	if _, ok := c.Scenarios["baseline"]; !ok {
		c.Scenarios["baseline"] = ScenarioConfig{Name: "Baseline", Description: "Current trends continue with gradual improvements"}
	}
}

func (c *Config) setSimulationDefaults() {
	s := &c.Simulation
	if s.StartYear == 0 {
		s.StartYear = 2025
	}
	if s.EndYear == 0 {
		s.EndYear = 2050
	}
	if s.Scenario == "" {
		s.Scenario = "baseline"
	}
	if s.Seed == 0 {
		s.Seed = 42
	}
	if s.OutputDir == "" {
		s.OutputDir = "results"
	}
	if s.SaveInterval == 0 {
		s.SaveInterval = 5
	}
}

func defaultSectors() map[string]SectorConfig {
	return map[string]SectorConfig{
		"rmg": {
			Name: "Ready-Made Garments", Kind: "rmg",
			InitialVolume: 35000, GrowthTrajectory: 0.08,
			GlobalMarketShare: 0.06, ValueChainPosition: 0.3, TariffExposure: 0.15,
			CompetitivenessFactors: map[string]float64{
				"labor_cost": 0.8, "productivity": 0.6, "compliance": 0.7,
				"lead_time": 0.6, "quality": 0.7,
			},
			Subsectors: []string{"knitwear", "woven", "technical_textiles"},
		},
		"pharma": {
			Name: "Pharmaceuticals", Kind: "emerging",
			InitialVolume: 1500, GrowthTrajectory: 0.12,
			GlobalMarketShare: 0.01, ValueChainPosition: 0.5, TariffExposure: 0.08,
			CompetitivenessFactors: map[string]float64{
				"r_and_d": 0.6, "quality": 0.8, "certification": 0.7,
				"production_cost": 0.7, "brand_recognition": 0.5,
			},
			Subsectors: []string{"generic_drugs", "active_ingredients", "vaccines"},
		},
		"it_services": {
			Name: "IT Services", Kind: "emerging",
			InitialVolume: 1200, GrowthTrajectory: 0.15,
			GlobalMarketShare: 0.005, ValueChainPosition: 0.5, TariffExposure: 0.02,
			CompetitivenessFactors: map[string]float64{
				"skill_level": 0.7, "english_proficiency": 0.8, "infrastructure": 0.5,
				"cost": 0.9, "delivery_quality": 0.7,
			},
			Subsectors: []string{"software_development", "bpo", "digital_services", "freelancing"},
		},
		"leather": {
			Name: "Leather and Footwear", Kind: "traditional",
			InitialVolume: 1000, GrowthTrajectory: 0.10,
			GlobalMarketShare: 0.015, ValueChainPosition: 0.3, TariffExposure: 0.10,
			CompetitivenessFactors: map[string]float64{
				"raw_material_quality": 0.7, "processing_technology": 0.6,
				"design_capability": 0.5, "environmental_compliance": 0.5, "cost": 0.8,
			},
			Subsectors: []string{"finished_leather", "footwear", "leather_goods"},
		},
		"jute": {
			Name: "Jute and Jute Products", Kind: "traditional",
			InitialVolume: 800, GrowthTrajectory: 0.05,
			GlobalMarketShare: 0.40, ValueChainPosition: 0.5, TariffExposure: 0.05,
			CompetitivenessFactors: map[string]float64{
				"raw_material_quality": 0.9, "processing_technology": 0.6,
				"product_diversification": 0.5, "eco_friendly_appeal": 0.9, "cost": 0.7,
			},
			Subsectors: []string{"raw_jute", "jute_textiles", "diversified_jute_products"},
		},
		"agro_products": {
			Name: "Agricultural Products", Kind: "traditional",
			InitialVolume: 700, GrowthTrajectory: 0.06,
			GlobalMarketShare: 0.01, ValueChainPosition: 0.2, TariffExposure: 0.12,
			CompetitivenessFactors: map[string]float64{
				"quality": 0.7, "certification": 0.5, "yield": 0.6,
				"processing_capability": 0.5, "cost": 0.8,
			},
			Subsectors: []string{"frozen_food", "processed_food", "tea", "vegetables", "fruits"},
		},
	}
}

func defaultImports() map[string]ImportConfig {
	return map[string]ImportConfig{
		"industrial_inputs": {
			Name: "Industrial Inputs", Kind: "industrial",
			InitialVolume: 25000, DomesticProductionRatio: 0.3, GrowthTrajectory: 0.08,
			PriceSensitivity: 0.7, SubstitutionElasticity: 0.4,
			Categories: []string{"cotton", "yarn", "fabric", "machinery", "chemicals", "metals", "plastics"},
		},
		"consumer_goods": {
			Name: "Consumer Goods", Kind: "consumer",
			InitialVolume: 15000, DomesticProductionRatio: 0.5, GrowthTrajectory: 0.10,
			PriceSensitivity: 0.8, SubstitutionElasticity: 0.6,
			Categories: []string{"food", "electronics", "vehicles", "luxury_goods", "household_items"},
		},
		"energy": {
			Name: "Energy", Kind: "energy",
			InitialVolume: 5000, DomesticProductionRatio: 0.2, GrowthTrajectory: 0.07,
			PriceSensitivity: 0.9, SubstitutionElasticity: 0.3,
			Categories: []string{"crude_oil", "lng", "coal", "petroleum_products"},
		},
	}
}

func (c *Config) setTradePolicyDefaults() {
	p := &c.TradePolicy
	if p.LDCGraduation.Year == 0 {
		p.LDCGraduation.Year = 2026
	}
	if len(p.LDCGraduation.TariffIncreases) == 0 {
		p.LDCGraduation.TariffIncreases = map[string]float64{
			"eu": 0.09, "us": 0.15, "canada": 0.12, "japan": 0.10, "australia": 0.08,
		}
	}
	if len(p.FTAs) == 0 {
		p.FTAs = map[string]FTAConfig{
			"safta":   {ImplementationLevel: 0.6, TariffReduction: 0.7, SensitiveListCoverage: 0.3},
			"bimstec": {ImplementationLevel: 0.3, TariffReduction: 0.5, SensitiveListCoverage: 0.4},
		}
	}
	if len(p.ProposedFTAs) == 0 {
		p.ProposedFTAs = map[string]ProposedFTAConfig{
			"japan":     {Year: 2029, Probability: 0.6},
			"malaysia":  {Year: 2027, Probability: 0.7},
			"indonesia": {Year: 2030, Probability: 0.5},
			"thailand":  {Year: 2028, Probability: 0.6},
		}
	}
	if p.RCEPAccession.Year == 0 {
		p.RCEPAccession = ProposedFTAConfig{Year: 2032, Probability: 0.4}
	}
	d := &p.Domestic
	if d.TariffRationalization == 0 {
		d.TariffRationalization = 0.05
	}
	if d.CashIncentiveLevel == 0 {
		d.CashIncentiveLevel = 0.05
	}
	if len(d.CoveredSectors) == 0 {
		d.CoveredSectors = []string{"rmg", "pharma", "it_services", "agro_products", "leather"}
	}
	if d.ZonesPlanned == 0 {
		d.ZonesPlanned = 100
	}
	if d.ZoneImplementationRate == 0 {
		d.ZoneImplementationRate = 0.06
	}
	if d.ZoneEffectiveness == 0 {
		d.ZoneEffectiveness = 0.7
	}
	if p.Enforcement == 0 {
		p.Enforcement = 1.0
	}
}

func (c *Config) setLogisticsDefaults() {
	l := &c.Logistics
	if len(l.Ports) == 0 {
		l.Ports = map[string]PortConfig{
			"chittagong": {
				InitialCapacity: 3000000, UtilizationRate: 0.95,
				Efficiency: 0.6, EfficiencyImprovement: 0.03, WaitingTimeDays: 3,
				Expansions: map[int]float64{2028: 4000000, 2035: 5000000, 2042: 6500000},
			},
			"matarbari": {
				StartYear: 2027, InitialCapacity: 1500000, UtilizationRate: 0.5,
				Efficiency: 0.8, EfficiencyImprovement: 0.02, WaitingTimeDays: 1,
				Expansions: map[int]float64{2032: 2500000, 2040: 4000000},
			},
			"payra": {
				StartYear: 2026, InitialCapacity: 500000, UtilizationRate: 0.5,
				Efficiency: 0.7, EfficiencyImprovement: 0.02, WaitingTimeDays: 2,
				Expansions: map[int]float64{2030: 1000000, 2038: 1800000},
			},
		}
	}
	t := &l.Transport
	if t.RoadQuality == 0 {
		*t = TransportConfig{
			RoadQuality: 0.6, RoadImprovement: 0.02, RoadCapacityGrowth: 0.04,
			RailShare: 0.15, RailTargetShare: 0.30, RailAnnualIncrease: 0.01,
			WaterwayShare: 0.25, WaterwayTargetShare: 0.35, WaterwayAnnualIncrease: 0.005,
		}
	}
	f := &l.Facilitation
	if f.CustomsLevel == 0 {
		*f = FacilitationConfig{
			CustomsLevel: 0.5, CustomsTarget: 0.9, CustomsImprovement: 0.02,
			SingleWindowYear: 2026, SingleWindowAdoptionRate: 0.1, SingleWindowEfficiencyGain: 0.3,
			PaperlessLevel: 0.3, PaperlessTarget: 0.8, PaperlessImprovement: 0.03,
		}
	}
}

func (c *Config) setExchangeRateDefaults() {
	e := &c.ExchangeRate
	if e.InitialRate == 0 {
		e.InitialRate = 110.0
	}
	if e.InitialREER == 0 {
		e.InitialREER = 100.0
	}
	if e.InitialReserves == 0 {
		e.InitialReserves = 35000
	}
	if e.AnnualDepreciation == 0 {
		e.AnnualDepreciation = 0.03
	}
	if e.Volatility == 0 {
		e.Volatility = 0.05
	}
	if e.InterventionThreshold == 0 {
		e.InterventionThreshold = 0.08
	}
	if e.InterventionStrength == 0 {
		e.InterventionStrength = 0.6
	}
	if e.ExportElasticity == 0 {
		e.ExportElasticity = 0.7
	}
	if e.ImportElasticity == 0 {
		e.ImportElasticity = 0.6
	}
	if e.RemittanceSensitivity == 0 {
		e.RemittanceSensitivity = 0.4
	}
}

func (c *Config) setGlobalMarketDefaults() {
	g := &c.GlobalMarkets
	if len(g.GDPGrowth) == 0 {
		g.GDPGrowth = map[string]float64{
			"usa": 0.025, "eu": 0.015, "china": 0.05, "india": 0.06, "japan": 0.01, "asean": 0.04,
		}
	}
	if len(g.MarketWeights) == 0 {
		g.MarketWeights = map[string]float64{
			"usa": 0.25, "eu": 0.35, "china": 0.10, "india": 0.10, "japan": 0.10, "asean": 0.10,
		}
	}
	if len(g.DemandGrowth) == 0 {
		g.DemandGrowth = map[string]float64{
			"rmg": 0.03, "pharma": 0.06, "it_services": 0.08,
			"leather": 0.04, "jute": 0.02, "agro_products": 0.03,
		}
	}
	if len(g.CompetitorGrowth) == 0 {
		g.CompetitorGrowth = map[string]map[string]float64{
			"vietnam":  {"rmg": 0.07, "electronics": 0.10, "leather": 0.06},
			"india":    {"it_services": 0.12, "pharma": 0.09, "rmg": 0.05},
			"cambodia": {"rmg": 0.09},
			"ethiopia": {"rmg": 0.12, "leather": 0.10},
		}
	}
	if g.ChinaPlusOne == 0 {
		g.ChinaPlusOne = 0.7
	}
	if g.NearshoringTrend == 0 {
		g.NearshoringTrend = 0.5
	}
	if g.ResiliencePremium == 0 {
		g.ResiliencePremium = 0.2
	}
	if len(g.SectorSupplyChains) == 0 {
		g.SectorSupplyChains = map[string]float64{
			"rmg": 0.8, "leather": 0.6, "pharma": 0.4, "it_services": 0.2,
			"jute": 0.2, "agro_products": 0.2,
		}
	}
}

func (c *Config) setGeopoliticsDefaults() {
	g := &c.Geopolitics
	if g.BBINLevel == 0 {
		g.BBINLevel = 0.3
	}
	if g.BBINImprovement == 0 {
		g.BBINImprovement = 0.03
	}
	if g.BayOfBengalLevel == 0 {
		g.BayOfBengalLevel = 0.4
	}
	if g.BayOfBengalImprovement == 0 {
		g.BayOfBengalImprovement = 0.02
	}
	if g.SAARCRevivalProbability == 0 {
		g.SAARCRevivalProbability = 0.3
	}
	if g.USChinaTension == 0 {
		g.USChinaTension = 0.7
	}
	if g.USChinaAnnualChange == 0 {
		g.USChinaAnnualChange = -0.01
	}
	if g.IndiaChinaTension == 0 {
		g.IndiaChinaTension = 0.6
	}
	if g.IndiaChinaAnnualChange == 0 {
		g.IndiaChinaAnnualChange = -0.01
	}
	if g.TradeWarProbability == 0 {
		g.TradeWarProbability = 0.3
	}
	if g.TradeWarAnnualChange == 0 {
		g.TradeWarAnnualChange = -0.01
	}
	if g.BRIParticipation == 0 {
		g.BRIParticipation = 0.7
	}
	if g.BRIImplementationRate == 0 {
		g.BRIImplementationRate = 0.1
	}
	if g.ExportMarketExposure == 0 {
		g.ExportMarketExposure = 0.6
	}
	if g.ExportDiversification == 0 {
		g.ExportDiversification = 0.3
	}
	if g.TariffEscalationExposure == 0 {
		g.TariffEscalationExposure = 0.5
	}
}

func (c *Config) setComplianceDefaults() {
	l := &c.Compliance.Labor
	if l.InitialLevel == 0 {
		l.InitialLevel = 0.7
	}
	if l.InitialMinimumWage == 0 {
		l.InitialMinimumWage = 75
	}
	if l.MinimumWageGrowth == 0 {
		l.MinimumWageGrowth = 0.08
	}
	if l.ComplianceCost == 0 {
		l.ComplianceCost = 0.03
	}
	if l.BuyerRequirementsGrowth == 0 {
		l.BuyerRequirementsGrowth = 0.05
	}
	e := &c.Compliance.Environmental
	if e.InitialLevel == 0 {
		e.InitialLevel = 0.5
	}
	if e.CarbonTaxYear == 0 {
		e.CarbonTaxYear = 2027
	}
	if e.CarbonTaxInitial == 0 {
		e.CarbonTaxInitial = 0.02
	}
	if e.CarbonTaxAnnualIncrease == 0 {
		e.CarbonTaxAnnualIncrease = 0.005
	}
	if e.GreenPremium == 0 {
		e.GreenPremium = 0.05
	}
	if e.CertificationAdoption == 0 {
		e.CertificationAdoption = 0.1
	}
	p := &c.Compliance.Product
	if p.InitialLevel == 0 {
		p.InitialLevel = 0.55
	}
	if p.TechnicalBarriersGrowth == 0 {
		p.TechnicalBarriersGrowth = 0.06
	}
	if p.TestingCapacityImprovement == 0 {
		p.TestingCapacityImprovement = 0.08
	}
	if p.ComplianceCapabilityImprovement == 0 {
		p.ComplianceCapabilityImprovement = 0.07
	}
}

func (c *Config) setStructuralDefaults() {
	s := &c.Structural
	if len(s.Sectors) == 0 {
		s.Sectors = map[string]StructuralSectorConfig{
			"rmg":               {Value: 38000, Complexity: 0.3, Position: 0.3},
			"leather":           {Value: 1100, Complexity: 0.4, Position: 0.3},
			"jute":              {Value: 900, Complexity: 0.3, Position: 0.5},
			"frozen_food":       {Value: 600, Complexity: 0.3, Position: 0.3},
			"pharma":            {Value: 1600, Complexity: 0.7, Position: 0.5},
			"it_services":       {Value: 1300, Complexity: 0.8, Position: 0.5},
			"light_engineering": {Value: 500, Complexity: 0.6, Position: 0.4},
			"agro_processing":   {Value: 800, Complexity: 0.4, Position: 0.3},
			"home_textiles":     {Value: 1200, Complexity: 0.4, Position: 0.4},
			"shipbuilding":      {Value: 200, Complexity: 0.7, Position: 0.4},
		}
	}
	if s.CapabilityIndex == 0 {
		s.CapabilityIndex = 0.4
	}
	if s.PolicyEffectiveness == 0 {
		s.PolicyEffectiveness = 0.5
	}
	if len(s.TargetSectors) == 0 {
		s.TargetSectors = []string{"pharma", "it_services", "leather", "light_engineering", "shipbuilding"}
	}
	if s.CoordinationLevel == 0 {
		s.CoordinationLevel = 0.6
	}
}

func (c *Config) setDigitalDefaults() {
	d := &c.Digital
	if d.EcommerceAdoption == 0 {
		d.EcommerceAdoption = 0.15
	}
	if d.EcommerceGrowth == 0 {
		d.EcommerceGrowth = 0.08
	}
	if d.DigitalServicesExports == 0 {
		d.DigitalServicesExports = 1500
	}
	if d.DigitalServicesGrowth == 0 {
		d.DigitalServicesGrowth = 0.12
	}
	if d.InfrastructureIndex == 0 {
		d.InfrastructureIndex = 0.35
	}
	if d.InfraImprovement == 0 {
		d.InfraImprovement = 0.03
	}
	if d.GovtInvestment == 0 {
		d.GovtInvestment = 0.02
	}
	if d.PrivateInvestment == 0 {
		d.PrivateInvestment = 0.02
	}
	if d.TradeBarriers == 0 {
		d.TradeBarriers = 0.6
	}
	if d.PolicyImprovement == 0 {
		d.PolicyImprovement = 0.02
	}
	if d.RegionalHarmonization == 0 {
		d.RegionalHarmonization = 0.01
	}
	if d.SkillDevelopment == 0 {
		d.SkillDevelopment = 0.03
	}
}

func (c *Config) setServicesDefaults() {
	s := &c.Services
	if s.RemittanceInflow == 0 {
		s.RemittanceInflow = 18000
	}
	if s.OverseasWorkers == 0 {
		s.OverseasWorkers = 8.0
	}
	if s.WorkerGrowth == 0 {
		s.WorkerGrowth = 0.04
	}
	if s.SkillImprovement == 0 {
		s.SkillImprovement = 0.02
	}
	if s.TourismEarnings == 0 {
		s.TourismEarnings = 500
	}
	if s.TouristArrivals == 0 {
		s.TouristArrivals = 0.8
	}
	if s.ArrivalGrowth == 0 {
		s.ArrivalGrowth = 0.06
	}
	if s.TourismInfrastructure == 0 {
		s.TourismInfrastructure = 0.02
	}
	if s.TourismMarketing == 0 {
		s.TourismMarketing = 0.01
	}
	if s.SpendingGrowth == 0 {
		s.SpendingGrowth = 0.03
	}
	if s.BPOExports == 0 {
		s.BPOExports = 1200
	}
	if s.BPOGrowth == 0 {
		s.BPOGrowth = 0.12
	}
	if s.BPOSkillDevelopment == 0 {
		s.BPOSkillDevelopment = 0.04
	}
	if s.BPOCompetitivePosition == 0 {
		s.BPOCompetitivePosition = -0.02
	}
	if s.ProfessionalExports == 0 {
		s.ProfessionalExports = 500
	}
	if s.ProfessionalGrowth == 0 {
		s.ProfessionalGrowth = 0.09
	}
	if s.ProfessionalSkill == 0 {
		s.ProfessionalSkill = 0.05
	}
	if s.InstitutionalQuality == 0 {
		s.InstitutionalQuality = 0.01
	}
	if s.RegionalIntegration == 0 {
		s.RegionalIntegration = 0.02
	}
	if s.ServiceFDI == 0 {
		s.ServiceFDI = 1000
	}
	if s.ServiceFDIGrowth == 0 {
		s.ServiceFDIGrowth = 0.07
	}
	if s.BusinessEnvironment == 0 {
		s.BusinessEnvironment = 0.01
	}
	if s.MarketSizeEffect == 0 {
		s.MarketSizeEffect = 0.03
	}
	if s.ServiceLiberalization == 0 {
		s.ServiceLiberalization = 0.02
	}
}

func (c *Config) setInvestmentDefaults() {
	i := &c.Investment
	if i.InitialGDP == 0 {
		i.InitialGDP = 350000
	}
	if i.GDPBaseGrowth == 0 {
		i.GDPBaseGrowth = 0.06
	}
	if i.InitialFDI == 0 {
		i.InitialFDI = 3500
	}
	if i.FDIBaseGrowth == 0 {
		i.FDIBaseGrowth = 0.08
	}
	if len(i.FDISectors) == 0 {
		i.FDISectors = map[string]float64{
			"rmg": 0.3, "energy": 0.2, "telecom": 0.15,
			"infrastructure": 0.1, "banking": 0.05, "other": 0.2,
		}
	}
	if i.DomesticInvestmentRate == 0 {
		i.DomesticInvestmentRate = 0.32
	}
	if i.DomesticRateChange == 0 {
		i.DomesticRateChange = 0.002
	}
	if i.InterestRate == 0 {
		i.InterestRate = 0.08
	}
	if i.BusinessConfidence == 0 {
		i.BusinessConfidence = 0.6
	}
	if i.InfrastructureQuality == 0 {
		i.InfrastructureQuality = 0.4
	}
	if i.RegionalCompetitiveness == 0 {
		i.RegionalCompetitiveness = -0.02
	}
	if i.SEZ.Active == 0 {
		i.SEZ = SEZConfig{
			Active: 8, Utilization: 0.40, Exports: 4500,
			NewZoneProbability: 0.4, UtilizationImprovement: 0.04, ExportPerZone: 1200,
		}
	}
	if i.PolicyIndex == 0 {
		i.PolicyIndex = 0.55
	}
	if i.RepatriationRestrictions == 0 {
		i.RepatriationRestrictions = 0.40
	}
	if i.InvestmentIncentives == 0 {
		i.InvestmentIncentives = 0.50
	}
	if i.PolicyImprovement == 0 {
		i.PolicyImprovement = 0.01
	}
}

func (c *Config) setInfraDefaults() {
	if c.Data.ReporterCode == 0 {
		c.Data.ReporterCode = 50 // Bangladesh in the BACI dataset
	}
	if c.Data.CountryCodesFile == "" {
		c.Data.CountryCodesFile = "country_codes.csv"
	}
	if c.Data.ProductCodesFile == "" {
		c.Data.ProductCodesFile = "product_codes_hs92.csv"
	}
	if c.Data.TradeFlowsFile == "" {
		c.Data.TradeFlowsFile = "bd_trade_data.csv"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "tradesim.db"
	}
	if c.API.Addr == "" {
		c.API.Addr = ":8080"
	}
	if c.API.RateLimit == 0 {
		c.API.RateLimit = 10
	}
	if c.API.RateBurst == 0 {
		c.API.RateBurst = 20
	}
	if len(c.API.AllowedOrigins) == 0 {
		c.API.AllowedOrigins = []string{"*"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func defaultScenarios() map[string]ScenarioConfig {
	return map[string]ScenarioConfig{
		"baseline": {
			Name:        "Baseline",
			Description: "Current trends continue with gradual improvements",
		},
		"accelerated_growth": {
			Name:             "Accelerated Growth",
			Description:      "Rapid economic development with strong export growth",
			ExportGrowth:     1.3,
			FDIGrowth:        1.5,
			Productivity:     1.4,
			Infrastructure:   1.5,
			SkillDevelopment: 1.3,
		},
		"global_slowdown": {
			Name:             "Global Economic Slowdown",
			Description:      "Reduced global demand affecting exports",
			GlobalDemand:     0.7,
			ExportGrowth:     0.6,
			FDIGrowth:        0.5,
			RemittanceGrowth: 0.8,
		},
		"digital_transformation": {
			Name:              "Digital Transformation",
			Description:       "Accelerated digital adoption in trade and economy",
			DigitalTrade:      2.0,
			ServiceExports:    1.8,
			TradeFacilitation: 1.5,
		},
		"sustainability_focus": {
			Name:            "Sustainability Focus",
			Description:     "Stronger environmental regulations and green growth",
			ComplianceCost:  1.7,
			CarbonBorderTax: 1.5,
		},
		"geopolitical_tensions": {
			Name:                  "Heightened Geopolitical Tensions",
			Description:           "Increased trade barriers and regional instability",
			TradeBarriers:         1.8,
			RegionalCooperation:   0.6,
			SupplyChainDisruption: 1.7,
			FDIGrowth:             0.7,
		},
	}
}
