// Package data loads the optional BACI-style reference CSVs and maps HS92
// product codes onto the structural model's sectors. When the trade-flow file
// is present, observed per-sector export values replace synthetic growth for
// the years they cover.
package data

import "strconv"

// SectorOther collects products outside the explicitly modeled sectors.
const SectorOther = "other"

// Sectors lists every sector the HS mapping can produce, SectorOther aside.
var Sectors = []string{
	"rmg", "leather", "jute", "frozen_food", "pharma", "it_services",
	"light_engineering", "agro_processing", "home_textiles", "shipbuilding",
}

// SectorForHS maps an HS92 product code (4-6 digits as exported in the
// trade-flow file) to a structural sector. Heading-level matches win over
// chapter-level ones.
func SectorForHS(code string) string {
	if len(code) < 2 {
		return SectorOther
	}

	switch heading(code) {
	case 5303, 5307, 5310:
		return "jute"
	case 8471, 8473:
		return "it_services"
	}

	chapter, err := strconv.Atoi(code[:2])
	if err != nil {
		return SectorOther
	}
	switch {
	case chapter == 61 || chapter == 62:
		return "rmg"
	case chapter >= 41 && chapter <= 43, chapter == 64:
		return "leather"
	case chapter == 53:
		return "jute"
	case chapter == 3 || chapter == 16:
		return "frozen_food"
	case chapter == 30:
		return "pharma"
	case chapter == 85:
		return "it_services"
	case chapter == 73 || chapter == 76 || chapter == 84 || chapter == 87:
		return "light_engineering"
	case chapter >= 7 && chapter <= 12, chapter == 15, chapter >= 17 && chapter <= 24:
		return "agro_processing"
	case chapter == 63:
		return "home_textiles"
	case chapter == 89:
		return "shipbuilding"
	default:
		return SectorOther
	}
}

func heading(code string) int {
	if len(code) < 4 {
		return 0
	}
	h, err := strconv.Atoi(code[:4])
	if err != nil {
		return 0
	}
	return h
}
