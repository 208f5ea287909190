package domain

// Per-year snapshots produced by the macro-context models. These are the
// typed signals the engine threads into the sector and import models.

// ExternalBalanceResult decomposes the non-trade external flows feeding the
// balance of payments. Million USD.
type ExternalBalanceResult struct {
	RemittanceInflow   float64 `json:"remittance_inflow"`
	FDIInflow          float64 `json:"fdi_inflow"`
	AidInflow          float64 `json:"aid_inflow"`
	ProfitRepatriation float64 `json:"profit_repatriation"`
	NetBalance         float64 `json:"net_balance"`
}

// TradeFinanceResult scores access to trade-finance instruments, 0-1 each.
type TradeFinanceResult struct {
	LCAccess              float64 `json:"lc_access"`
	CorrespondentBanking  float64 `json:"correspondent_banking"`
	TradeCreditConditions float64 `json:"trade_credit_conditions"`
	ForexAvailability     float64 `json:"forex_availability"`
	OverallCondition      float64 `json:"overall_condition"`
}

// ExchangeRateResult is the currency model's yearly snapshot. Rate is BDT
// per USD; impacts are signed growth-rate contributions for downstream models.
type ExchangeRateResult struct {
	Year                  int                   `json:"year"`
	Rate                  float64               `json:"rate"`
	REER                  float64               `json:"reer"`
	Depreciation          float64               `json:"depreciation"`
	PotentialDepreciation float64               `json:"potential_depreciation"`
	Intervened            bool                  `json:"intervened"`
	InterventionCost      float64               `json:"intervention_cost"`
	Reserves              float64               `json:"reserves"`
	ReserveMonths         float64               `json:"reserve_months"`
	ExportImpact          float64               `json:"export_impact"`
	ImportImpact          float64               `json:"import_impact"`
	RemittanceImpact      float64               `json:"remittance_impact"`
	ExternalBalance       ExternalBalanceResult `json:"external_balance"`
	TradeFinance          TradeFinanceResult    `json:"trade_finance"`
}

// PortResult is one seaport's yearly state.
type PortResult struct {
	Name            string  `json:"name"`
	Operational     bool    `json:"operational"`
	Capacity        float64 `json:"capacity"`
	Utilization     float64 `json:"utilization"`
	Efficiency      float64 `json:"efficiency"`
	Congestion      float64 `json:"congestion"`
	WaitingTimeDays float64 `json:"waiting_time_days"`
	MarketShare     float64 `json:"market_share"`
}

// LogisticsResult blends port, transport and facilitation performance.
// LogisticsCost is a share of trade value, TimeDelayDays an average door-to-port
// delay, Reliability a 0-1 on-time score.
type LogisticsResult struct {
	Year               int          `json:"year"`
	Ports              []PortResult `json:"ports"`
	PortScore          float64      `json:"port_score"`
	TransportScore     float64      `json:"transport_score"`
	FacilitationScore  float64      `json:"facilitation_score"`
	OverallPerformance float64      `json:"overall_performance"`
	LogisticsCost      float64      `json:"logistics_cost"`
	TimeDelayDays      float64      `json:"time_delay_days"`
	Reliability        float64      `json:"reliability"`
}

// PolicyEvent is a discrete trade-policy change that fired in a given year.
type PolicyEvent struct {
	Year   int     `json:"year"`
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// TradePolicyResult is the policy model's yearly snapshot. TariffChanges maps
// destination market to the tariff delta exporters face there this year.
type TradePolicyResult struct {
	Year                int                `json:"year"`
	Events              []PolicyEvent      `json:"events,omitempty"`
	TariffChanges       map[string]float64 `json:"tariff_changes"`
	MarketAccessScore   float64            `json:"market_access_score"`
	DomesticPolicyScore float64            `json:"domestic_policy_score"`
	NetImpact           float64            `json:"net_impact"`
	EconomicZones       int                `json:"economic_zones"`
}

// TradeWar is an active trade conflict affecting export diversion.
type TradeWar struct {
	Parties        string  `json:"parties"`
	Intensity      float64 `json:"intensity"`
	RemainingYears int     `json:"remaining_years"`
}

// GeopoliticalResult is the geopolitics model's yearly snapshot.
type GeopoliticalResult struct {
	Year                int                `json:"year"`
	RegionalIntegration float64            `json:"regional_integration"`
	SAARCRevived        bool               `json:"saarc_revived"`
	BilateralRelations  map[string]float64 `json:"bilateral_relations"`
	USChinaTension      float64            `json:"us_china_tension"`
	IndiaChinaTension   float64            `json:"india_china_tension"`
	SupplyChainShift    float64            `json:"supply_chain_shift"`
	BRIImpact           float64            `json:"bri_impact"`
	TradeWarProbability float64            `json:"trade_war_probability"`
	ActiveTradeWars     []TradeWar         `json:"active_trade_wars,omitempty"`
	SectorDiversion     map[string]float64 `json:"sector_diversion"`
	Opportunity         float64            `json:"opportunity"`
	Vulnerability       float64            `json:"vulnerability"`
	NetImpact           float64            `json:"net_impact"`
}

// ComplianceResult is the compliance model's yearly snapshot. Cost and
// premium are signed growth-rate contributions; SectorCosts carries per-sector
// drag factors for the sector adjusters.
type ComplianceResult struct {
	Year                    int                `json:"year"`
	LaborCompliance         float64            `json:"labor_compliance"`
	EnvironmentalCompliance float64            `json:"environmental_compliance"`
	ProductCompliance       float64            `json:"product_compliance"`
	CarbonTaxRate           float64            `json:"carbon_tax_rate"`
	MinimumWage             float64            `json:"minimum_wage"`
	UnrestRisk              float64            `json:"unrest_risk"`
	TotalCost               float64            `json:"total_cost"`
	MarketPremium           float64            `json:"market_premium"`
	NetImpact               float64            `json:"net_impact"`
	SectorCosts             map[string]float64 `json:"sector_costs"`
}

// GlobalMarketResult is the world-demand model's yearly snapshot.
type GlobalMarketResult struct {
	Year                     int                `json:"year"`
	MarketGrowth             map[string]float64 `json:"market_growth"`
	WeightedDemandGrowth     float64            `json:"weighted_demand_growth"`
	SectorDemandGrowth       map[string]float64 `json:"sector_demand_growth"`
	CompetitorGrowth         map[string]float64 `json:"competitor_growth"`
	WeightedCompetitorGrowth float64            `json:"weighted_competitor_growth"`
	ChinaPlusOne             float64            `json:"china_plus_one"`
	SupplyChainImpact        float64            `json:"supply_chain_impact"`
}

// StructuralResult is the structural-transformation model's yearly snapshot.
// Diversification is an HHI: lower means more diversified.
type StructuralResult struct {
	Year                int                `json:"year"`
	SectorValues        map[string]float64 `json:"sector_values"`
	Diversification     float64            `json:"diversification"`
	ValueChainPositions map[string]float64 `json:"value_chain_positions"`
	CapabilityIndex     float64            `json:"capability_index"`
	PolicyEffectiveness float64            `json:"policy_effectiveness"`
	PolicyRegime        string             `json:"policy_regime"`
	DataSource          string             `json:"data_source"`
}

// DigitalTradeResult is the digital-trade model's yearly snapshot.
type DigitalTradeResult struct {
	Year                   int     `json:"year"`
	EcommerceAdoption      float64 `json:"ecommerce_adoption"`
	DigitalServicesExports float64 `json:"digital_services_exports"`
	InfrastructureIndex    float64 `json:"infrastructure_index"`
	TradeBarriers          float64 `json:"trade_barriers"`
}

// ServicesTradeResult is the services model's yearly snapshot across the four
// GATS modes. Monetary values million USD, workers/arrivals in millions.
type ServicesTradeResult struct {
	Year                int     `json:"year"`
	RemittanceInflow    float64 `json:"remittance_inflow"`
	OverseasWorkers     float64 `json:"overseas_workers"`
	TourismEarnings     float64 `json:"tourism_earnings"`
	TouristArrivals     float64 `json:"tourist_arrivals"`
	BPOExports          float64 `json:"bpo_exports"`
	ProfessionalExports float64 `json:"professional_exports"`
	ServiceFDI          float64 `json:"service_fdi"`
	TotalServiceExports float64 `json:"total_service_exports"`
}

// InvestmentResult is the investment model's yearly snapshot. GDP and flows
// are million USD.
type InvestmentResult struct {
	Year                     int                `json:"year"`
	GDP                      float64            `json:"gdp"`
	GDPGrowth                float64            `json:"gdp_growth"`
	FDIInflow                float64            `json:"fdi_inflow"`
	FDIGrowth                float64            `json:"fdi_growth"`
	FDISectors               map[string]float64 `json:"fdi_sectors"`
	DomesticInvestment       float64            `json:"domestic_investment"`
	DomesticInvestmentRate   float64            `json:"domestic_investment_rate"`
	ActiveSEZs               int                `json:"active_sezs"`
	SEZUtilization           float64            `json:"sez_utilization"`
	SEZExports               float64            `json:"sez_exports"`
	PolicyIndex              float64            `json:"policy_index"`
	RepatriationRestrictions float64            `json:"repatriation_restrictions"`
}
