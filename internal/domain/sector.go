package domain

// SectorResult is one export sector's snapshot for a simulated year.
// ExportVolume is million USD.
type SectorResult struct {
	Sector             string             `json:"sector"`
	Year               int                `json:"year"`
	ExportVolume       float64            `json:"export_volume"`
	GrowthRate         float64            `json:"growth_rate"`
	Competitiveness    float64            `json:"competitiveness"`
	GlobalMarketShare  float64            `json:"global_market_share"`
	ValueChainPosition float64            `json:"value_chain_position"`
	TariffImpact       float64            `json:"tariff_impact"`
	CompetitorImpact   float64            `json:"competitor_impact"`
	AdjusterEffects    map[string]float64 `json:"adjuster_effects,omitempty"`
}

// ImportResult is one import category's snapshot for a simulated year.
// Volumes are million USD.
type ImportResult struct {
	Category         string  `json:"category"`
	Year             int     `json:"year"`
	ImportVolume     float64 `json:"import_volume"`
	GrowthRate       float64 `json:"growth_rate"`
	DomesticShare    float64 `json:"domestic_share"`
	TotalConsumption float64 `json:"total_consumption"`
	PriceImpact      float64 `json:"price_impact"`
}
