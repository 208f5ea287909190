package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full simulation configuration. Every model domain has its own
// typed section; missing values are filled by setDefaults and the result is
// validated eagerly in Load so a malformed file fails the run up front.
type Config struct {
	Simulation    SimulationConfig          `yaml:"simulation"`
	Sectors       map[string]SectorConfig   `yaml:"sectors"`
	Imports       map[string]ImportConfig   `yaml:"imports"`
	TradePolicy   TradePolicyConfig         `yaml:"trade_policy"`
	Logistics     LogisticsConfig           `yaml:"logistics"`
	ExchangeRate  ExchangeRateConfig        `yaml:"exchange_rate"`
	GlobalMarkets GlobalMarketsConfig       `yaml:"global_markets"`
	Geopolitics   GeopoliticsConfig         `yaml:"geopolitics"`
	Compliance    ComplianceConfig          `yaml:"compliance"`
	Structural    StructuralConfig          `yaml:"structural_transformation"`
	Digital       DigitalConfig             `yaml:"digital_trade"`
	Services      ServicesConfig            `yaml:"services_trade"`
	Investment    InvestmentConfig          `yaml:"investment"`
	Data          DataConfig                `yaml:"data"`
	Storage       StorageConfig             `yaml:"storage"`
	API           APIConfig                 `yaml:"api"`
	Log           LogConfig                 `yaml:"log"`
	Scenarios     map[string]ScenarioConfig `yaml:"scenarios"`
}

// SimulationConfig controls the run window and reproducibility.
type SimulationConfig struct {
	StartYear    int    `yaml:"start_year"`
	EndYear      int    `yaml:"end_year"`
	Scenario     string `yaml:"scenario"`
	Seed         uint64 `yaml:"seed"`
	OutputDir    string `yaml:"output_dir"`
	SaveInterval int    `yaml:"save_interval"` // intermediate dump every N years, 0 = off
}

// SectorConfig parameterizes one export sector. Volumes are million USD.
type SectorConfig struct {
	Name                   string             `yaml:"name"`
	Kind                   string             `yaml:"kind"` // rmg | emerging | traditional | base
	InitialVolume          float64            `yaml:"initial_volume"`
	GrowthTrajectory       float64            `yaml:"growth_trajectory"`
	GlobalMarketShare      float64            `yaml:"global_market_share"`
	ValueChainPosition     float64            `yaml:"value_chain_position"`
	TariffExposure         float64            `yaml:"tariff_exposure"`
	CompetitivenessFactors map[string]float64 `yaml:"competitiveness_factors"`
	Subsectors             []string           `yaml:"subsectors"`
}

// ImportConfig parameterizes one import dependency category.
type ImportConfig struct {
	Name                    string   `yaml:"name"`
	Kind                    string   `yaml:"kind"` // industrial | consumer | energy | base
	InitialVolume           float64  `yaml:"initial_volume"`
	DomesticProductionRatio float64  `yaml:"domestic_production_ratio"`
	GrowthTrajectory        float64  `yaml:"growth_trajectory"`
	PriceSensitivity        float64  `yaml:"price_sensitivity"`
	SubstitutionElasticity  float64  `yaml:"substitution_elasticity"`
	Categories              []string `yaml:"categories"`
}

// LDCGraduationConfig schedules the loss of LDC trade preferences.
type LDCGraduationConfig struct {
	Year            int                `yaml:"year"`
	TariffIncreases map[string]float64 `yaml:"tariff_increases"`
}

// FTAConfig describes an agreement already in force.
type FTAConfig struct {
	ImplementationLevel   float64 `yaml:"implementation_level"`
	TariffReduction       float64 `yaml:"tariff_reduction"`
	SensitiveListCoverage float64 `yaml:"sensitive_list_coverage"`
}

// ProposedFTAConfig describes an agreement under negotiation.
type ProposedFTAConfig struct {
	Year        int     `yaml:"year"`
	Probability float64 `yaml:"probability"`
}

// DomesticPolicyConfig covers tariff rationalization, export incentives and
// the economic-zone program.
type DomesticPolicyConfig struct {
	TariffRationalization  float64  `yaml:"tariff_rationalization"`
	CashIncentiveLevel     float64  `yaml:"cash_incentive_level"`
	CoveredSectors         []string `yaml:"covered_sectors"`
	ZonesPlanned           int      `yaml:"zones_planned"`
	ZoneImplementationRate float64  `yaml:"zone_implementation_rate"`
	ZoneEffectiveness      float64  `yaml:"zone_effectiveness"`
}

// TradePolicyConfig parameterizes the trade-policy model.
type TradePolicyConfig struct {
	LDCGraduation LDCGraduationConfig          `yaml:"ldc_graduation"`
	FTAs          map[string]FTAConfig         `yaml:"ftas"`
	ProposedFTAs  map[string]ProposedFTAConfig `yaml:"proposed_ftas"`
	RCEPAccession ProposedFTAConfig            `yaml:"rcep_accession"`
	Domestic      DomesticPolicyConfig         `yaml:"domestic"`
	Enforcement   float64                      `yaml:"enforcement"`
}

// PortConfig parameterizes one seaport. Capacity is TEU/year.
type PortConfig struct {
	StartYear             int             `yaml:"start_year"` // 0 = already operational
	InitialCapacity       float64         `yaml:"initial_capacity"`
	UtilizationRate       float64         `yaml:"utilization_rate"`
	Efficiency            float64         `yaml:"efficiency"`
	EfficiencyImprovement float64         `yaml:"efficiency_improvement"`
	WaitingTimeDays       float64         `yaml:"waiting_time_days"`
	Expansions            map[int]float64 `yaml:"expansions"` // year -> new capacity
}

// TransportConfig covers the road/rail/waterway network.
type TransportConfig struct {
	RoadQuality            float64 `yaml:"road_quality"`
	RoadImprovement        float64 `yaml:"road_improvement"`
	RoadCapacityGrowth     float64 `yaml:"road_capacity_growth"`
	RailShare              float64 `yaml:"rail_share"`
	RailTargetShare        float64 `yaml:"rail_target_share"`
	RailAnnualIncrease     float64 `yaml:"rail_annual_increase"`
	WaterwayShare          float64 `yaml:"waterway_share"`
	WaterwayTargetShare    float64 `yaml:"waterway_target_share"`
	WaterwayAnnualIncrease float64 `yaml:"waterway_annual_increase"`
}

// FacilitationConfig covers customs, single window and paperless trade.
type FacilitationConfig struct {
	CustomsLevel               float64 `yaml:"customs_level"`
	CustomsTarget              float64 `yaml:"customs_target"`
	CustomsImprovement         float64 `yaml:"customs_improvement"`
	SingleWindowYear           int     `yaml:"single_window_year"`
	SingleWindowAdoptionRate   float64 `yaml:"single_window_adoption_rate"`
	SingleWindowEfficiencyGain float64 `yaml:"single_window_efficiency_gain"`
	PaperlessLevel             float64 `yaml:"paperless_level"`
	PaperlessTarget            float64 `yaml:"paperless_target"`
	PaperlessImprovement       float64 `yaml:"paperless_improvement"`
}

// LogisticsConfig parameterizes the logistics model.
type LogisticsConfig struct {
	Ports        map[string]PortConfig `yaml:"ports"`
	Transport    TransportConfig       `yaml:"transport"`
	Facilitation FacilitationConfig    `yaml:"facilitation"`
}

// ExchangeRateConfig parameterizes the currency model. Rate is BDT per USD,
// reserves million USD.
type ExchangeRateConfig struct {
	InitialRate           float64 `yaml:"initial_rate"`
	InitialREER           float64 `yaml:"initial_reer"`
	InitialReserves       float64 `yaml:"initial_reserves"`
	AnnualDepreciation    float64 `yaml:"annual_depreciation"`
	Volatility            float64 `yaml:"volatility"`
	InterventionThreshold float64 `yaml:"intervention_threshold"`
	InterventionStrength  float64 `yaml:"intervention_strength"`
	ExportElasticity      float64 `yaml:"export_elasticity"`
	ImportElasticity      float64 `yaml:"import_elasticity"`
	RemittanceSensitivity float64 `yaml:"remittance_sensitivity"`
}

// GlobalMarketsConfig parameterizes world demand and competitor dynamics.
type GlobalMarketsConfig struct {
	GDPGrowth          map[string]float64            `yaml:"gdp_growth"`
	MarketWeights      map[string]float64            `yaml:"market_weights"`
	DemandGrowth       map[string]float64            `yaml:"demand_growth"`
	CompetitorGrowth   map[string]map[string]float64 `yaml:"competitor_growth"`
	ChinaPlusOne       float64                       `yaml:"china_plus_one"`
	NearshoringTrend   float64                       `yaml:"nearshoring_trend"`
	ResiliencePremium  float64                       `yaml:"resilience_premium"`
	SectorSupplyChains map[string]float64            `yaml:"sector_supply_chains"`
}

// GeopoliticsConfig parameterizes regional and global political dynamics.
type GeopoliticsConfig struct {
	BBINLevel                float64 `yaml:"bbin_level"`
	BBINImprovement          float64 `yaml:"bbin_improvement"`
	BayOfBengalLevel         float64 `yaml:"bay_of_bengal_level"`
	BayOfBengalImprovement   float64 `yaml:"bay_of_bengal_improvement"`
	SAARCRevivalProbability  float64 `yaml:"saarc_revival_probability"`
	USChinaTension           float64 `yaml:"us_china_tension"`
	USChinaAnnualChange      float64 `yaml:"us_china_annual_change"`
	IndiaChinaTension        float64 `yaml:"india_china_tension"`
	IndiaChinaAnnualChange   float64 `yaml:"india_china_annual_change"`
	TradeWarProbability      float64 `yaml:"trade_war_probability"`
	TradeWarAnnualChange     float64 `yaml:"trade_war_annual_change"`
	BRIParticipation         float64 `yaml:"bri_participation"`
	BRIImplementationRate    float64 `yaml:"bri_implementation_rate"`
	ExportMarketExposure     float64 `yaml:"export_market_exposure"`
	ExportDiversification    float64 `yaml:"export_diversification"`
	TariffEscalationExposure float64 `yaml:"tariff_escalation_exposure"`
}

// LaborComplianceConfig covers wage and labor-standard dynamics.
type LaborComplianceConfig struct {
	InitialLevel            float64 `yaml:"initial_level"`
	InitialMinimumWage      float64 `yaml:"initial_minimum_wage"` // USD/month
	MinimumWageGrowth       float64 `yaml:"minimum_wage_growth"`
	ComplianceCost          float64 `yaml:"compliance_cost"`
	BuyerRequirementsGrowth float64 `yaml:"buyer_requirements_growth"`
}

// EnvironmentalComplianceConfig covers carbon pricing and certification.
type EnvironmentalComplianceConfig struct {
	InitialLevel            float64 `yaml:"initial_level"`
	CarbonTaxYear           int     `yaml:"carbon_tax_year"`
	CarbonTaxInitial        float64 `yaml:"carbon_tax_initial"`
	CarbonTaxAnnualIncrease float64 `yaml:"carbon_tax_annual_increase"`
	GreenPremium            float64 `yaml:"green_premium"`
	CertificationAdoption   float64 `yaml:"certification_adoption"`
}

// ProductComplianceConfig covers technical standards capability.
type ProductComplianceConfig struct {
	InitialLevel                    float64 `yaml:"initial_level"`
	TechnicalBarriersGrowth         float64 `yaml:"technical_barriers_growth"`
	TestingCapacityImprovement      float64 `yaml:"testing_capacity_improvement"`
	ComplianceCapabilityImprovement float64 `yaml:"compliance_capability_improvement"`
}

// ComplianceConfig parameterizes the compliance model.
type ComplianceConfig struct {
	Labor         LaborComplianceConfig         `yaml:"labor"`
	Environmental EnvironmentalComplianceConfig `yaml:"environmental"`
	Product       ProductComplianceConfig       `yaml:"product"`
}

// StructuralSectorConfig seeds one sector in the transformation model.
type StructuralSectorConfig struct {
	Value      float64 `yaml:"value"` // million USD export value
	Complexity float64 `yaml:"complexity"`
	Position   float64 `yaml:"position"` // value-chain position, 0-1
}

// StructuralConfig parameterizes the structural-transformation model.
type StructuralConfig struct {
	Sectors             map[string]StructuralSectorConfig `yaml:"sectors"`
	CapabilityIndex     float64                           `yaml:"capability_index"`
	PolicyEffectiveness float64                           `yaml:"policy_effectiveness"`
	TargetSectors       []string                          `yaml:"target_sectors"`
	CoordinationLevel   float64                           `yaml:"coordination_level"`
}

// DigitalConfig parameterizes the digital-trade model.
type DigitalConfig struct {
	EcommerceAdoption      float64 `yaml:"ecommerce_adoption"`
	EcommerceGrowth        float64 `yaml:"ecommerce_growth"`
	DigitalServicesExports float64 `yaml:"digital_services_exports"` // million USD
	DigitalServicesGrowth  float64 `yaml:"digital_services_growth"`
	InfrastructureIndex    float64 `yaml:"infrastructure_index"`
	InfraImprovement       float64 `yaml:"infra_improvement"`
	GovtInvestment         float64 `yaml:"govt_investment"`
	PrivateInvestment      float64 `yaml:"private_investment"`
	TradeBarriers          float64 `yaml:"trade_barriers"`
	PolicyImprovement      float64 `yaml:"policy_improvement"`
	RegionalHarmonization  float64 `yaml:"regional_harmonization"`
	SkillDevelopment       float64 `yaml:"skill_development"`
}

// ServicesConfig parameterizes the services-trade model. Monetary values
// million USD; workers and arrivals in millions.
type ServicesConfig struct {
	RemittanceInflow       float64 `yaml:"remittance_inflow"`
	OverseasWorkers        float64 `yaml:"overseas_workers"`
	WorkerGrowth           float64 `yaml:"worker_growth"`
	SkillImprovement       float64 `yaml:"skill_improvement"`
	TourismEarnings        float64 `yaml:"tourism_earnings"`
	TouristArrivals        float64 `yaml:"tourist_arrivals"`
	ArrivalGrowth          float64 `yaml:"arrival_growth"`
	TourismInfrastructure  float64 `yaml:"tourism_infrastructure"`
	TourismMarketing       float64 `yaml:"tourism_marketing"`
	SpendingGrowth         float64 `yaml:"spending_growth"`
	BPOExports             float64 `yaml:"bpo_exports"`
	BPOGrowth              float64 `yaml:"bpo_growth"`
	BPOSkillDevelopment    float64 `yaml:"bpo_skill_development"`
	BPOCompetitivePosition float64 `yaml:"bpo_competitive_position"`
	ProfessionalExports    float64 `yaml:"professional_exports"`
	ProfessionalGrowth     float64 `yaml:"professional_growth"`
	ProfessionalSkill      float64 `yaml:"professional_skill"`
	InstitutionalQuality   float64 `yaml:"institutional_quality"`
	RegionalIntegration    float64 `yaml:"regional_integration"`
	ServiceFDI             float64 `yaml:"service_fdi"`
	ServiceFDIGrowth       float64 `yaml:"service_fdi_growth"`
	BusinessEnvironment    float64 `yaml:"business_environment"`
	MarketSizeEffect       float64 `yaml:"market_size_effect"`
	ServiceLiberalization  float64 `yaml:"service_liberalization"`
}

// SEZConfig covers the special-economic-zone program.
type SEZConfig struct {
	Active                 int     `yaml:"active"`
	Utilization            float64 `yaml:"utilization"`
	Exports                float64 `yaml:"exports"` // million USD
	NewZoneProbability     float64 `yaml:"new_zone_probability"`
	UtilizationImprovement float64 `yaml:"utilization_improvement"`
	ExportPerZone          float64 `yaml:"export_per_zone"` // million USD at full utilization
}

// InvestmentConfig parameterizes the investment model. GDP and flows are
// million USD.
type InvestmentConfig struct {
	InitialGDP               float64            `yaml:"initial_gdp"`
	GDPBaseGrowth            float64            `yaml:"gdp_base_growth"`
	InitialFDI               float64            `yaml:"initial_fdi"`
	FDIBaseGrowth            float64            `yaml:"fdi_base_growth"`
	FDISectors               map[string]float64 `yaml:"fdi_sectors"`
	DomesticInvestmentRate   float64            `yaml:"domestic_investment_rate"`
	DomesticRateChange       float64            `yaml:"domestic_rate_change"`
	InterestRate             float64            `yaml:"interest_rate"`
	BusinessConfidence       float64            `yaml:"business_confidence"`
	InfrastructureQuality    float64            `yaml:"infrastructure_quality"`
	RegionalCompetitiveness  float64            `yaml:"regional_competitiveness"`
	SEZ                      SEZConfig          `yaml:"sez"`
	PolicyIndex              float64            `yaml:"policy_index"`
	RepatriationRestrictions float64            `yaml:"repatriation_restrictions"`
	InvestmentIncentives     float64            `yaml:"investment_incentives"`
	PolicyImprovement        float64            `yaml:"policy_improvement"`
}

// DataConfig points at the optional reference CSVs for observed trade data.
type DataConfig struct {
	Dir              string `yaml:"dir"`
	CountryCodesFile string `yaml:"country_codes_file"`
	ProductCodesFile string `yaml:"product_codes_file"`
	TradeFlowsFile   string `yaml:"trade_flows_file"`
	ReporterCode     int    `yaml:"reporter_code"` // Bangladesh in the trade-flow dataset
}

// StorageConfig points at the SQLite results database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// APIConfig configures the HTTP read API.
type APIConfig struct {
	Addr           string   `yaml:"addr"`
	RateLimit      float64  `yaml:"rate_limit"` // requests per second per client
	RateBurst      int      `yaml:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// ScenarioConfig is a named bundle of multiplicative overrides applied on top
// of the baseline parameters. A zero field means "unset" and defaults to 1.
type ScenarioConfig struct {
	Name                  string  `yaml:"name"`
	Description           string  `yaml:"description"`
	ExportGrowth          float64 `yaml:"export_growth_multiplier"`
	GlobalDemand          float64 `yaml:"global_demand_multiplier"`
	CompetitorGrowth      float64 `yaml:"competitor_growth_multiplier"`
	FDIGrowth             float64 `yaml:"fdi_growth_multiplier"`
	RemittanceGrowth      float64 `yaml:"remittance_growth_multiplier"`
	DigitalTrade          float64 `yaml:"digital_trade_multiplier"`
	ServiceExports        float64 `yaml:"service_exports_multiplier"`
	TradeFacilitation     float64 `yaml:"trade_facilitation_multiplier"`
	ComplianceCost        float64 `yaml:"compliance_cost_multiplier"`
	CarbonBorderTax       float64 `yaml:"carbon_border_tax_multiplier"`
	TradeBarriers         float64 `yaml:"trade_barrier_multiplier"`
	RegionalCooperation   float64 `yaml:"regional_cooperation_multiplier"`
	SupplyChainDisruption float64 `yaml:"supply_chain_disruption_multiplier"`
	Infrastructure        float64 `yaml:"infrastructure_multiplier"`
	SkillDevelopment      float64 `yaml:"skill_development_multiplier"`
	Productivity          float64 `yaml:"productivity_multiplier"`
}

// Load reads the YAML config at path, applies .env/environment overrides,
// fills defaults and validates. A missing file is not an error: the baseline
// configuration is returned (with overrides and defaults applied).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// baseline run without a config file
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment override the handful of settings
// that vary per deployment.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TRADESIM_SCENARIO"); v != "" {
		c.Simulation.Scenario = v
	}
	if v := os.Getenv("TRADESIM_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Simulation.Seed = seed
		}
	}
	if v := os.Getenv("TRADESIM_OUTPUT_DIR"); v != "" {
		c.Simulation.OutputDir = v
	}
	if v := os.Getenv("TRADESIM_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("TRADESIM_API_ADDR"); v != "" {
		c.API.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate fails fast on configurations the models cannot run with.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.StartYear <= 0 || s.EndYear <= 0 {
		return fmt.Errorf("validate: simulation years must be set (got %d-%d)", s.StartYear, s.EndYear)
	}
	if s.EndYear < s.StartYear {
		return fmt.Errorf("validate: end_year %d before start_year %d", s.EndYear, s.StartYear)
	}
	if _, ok := c.Scenarios[s.Scenario]; !ok {
		return fmt.Errorf("validate: unknown scenario %q", s.Scenario)
	}
	if len(c.Sectors) == 0 {
		return fmt.Errorf("validate: no export sectors configured")
	}
	for id, sec := range c.Sectors {
		if sec.InitialVolume <= 0 {
			return fmt.Errorf("validate: sector %q: initial_volume must be positive", id)
		}
		if sec.GlobalMarketShare < 0 || sec.GlobalMarketShare > 1 {
			return fmt.Errorf("validate: sector %q: global_market_share out of [0,1]", id)
		}
		switch sec.Kind {
		case "rmg", "emerging", "traditional", "base":
		default:
			return fmt.Errorf("validate: sector %q: unknown kind %q", id, sec.Kind)
		}
	}
	for id, imp := range c.Imports {
		if imp.InitialVolume <= 0 {
			return fmt.Errorf("validate: import %q: initial_volume must be positive", id)
		}
		if imp.DomesticProductionRatio < 0 || imp.DomesticProductionRatio >= 1 {
			return fmt.Errorf("validate: import %q: domestic_production_ratio out of [0,1)", id)
		}
	}
	if c.ExchangeRate.InitialRate <= 0 {
		return fmt.Errorf("validate: exchange_rate.initial_rate must be positive")
	}
	if c.ExchangeRate.InterventionThreshold <= 0 {
		return fmt.Errorf("validate: exchange_rate.intervention_threshold must be positive")
	}
	if c.Investment.InitialGDP <= 0 {
		return fmt.Errorf("validate: investment.initial_gdp must be positive")
	}
	if len(c.Logistics.Ports) == 0 {
		return fmt.Errorf("validate: no ports configured")
	}
	return nil
}

// Scenario resolves the active scenario bundle with all multipliers
// defaulted to 1 where unset.
func (c *Config) Scenario() ScenarioConfig {
	sc := c.Scenarios[c.Simulation.Scenario]
	sc.normalize()
	return sc
}

// ScenarioByName resolves a named scenario, reporting whether it exists.
func (c *Config) ScenarioByName(name string) (ScenarioConfig, bool) {
	sc, ok := c.Scenarios[name]
	if !ok {
		return ScenarioConfig{}, false
	}
	sc.normalize()
	return sc, true
}

func (s *ScenarioConfig) normalize() {
	for _, m := range []*float64{
		&s.ExportGrowth, &s.GlobalDemand, &s.CompetitorGrowth, &s.FDIGrowth,
		&s.RemittanceGrowth, &s.DigitalTrade, &s.ServiceExports, &s.TradeFacilitation,
		&s.ComplianceCost, &s.CarbonBorderTax, &s.TradeBarriers, &s.RegionalCooperation,
		&s.SupplyChainDisruption, &s.Infrastructure, &s.SkillDevelopment, &s.Productivity,
	} {
		if *m == 0 {
			*m = 1.0
		}
	}
}
