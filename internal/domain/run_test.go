package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearRecord_TotalsBitIdenticalAcrossCalls(t *testing.T) {
	rec := YearRecord{
		Year: 2025,
		Exports: map[string]SectorResult{
			"rmg":         {ExportVolume: 38412.71},
			"leather":     {ExportVolume: 1243.017},
			"jute":        {ExportVolume: 911.53},
			"pharma":      {ExportVolume: 201.9},
			"it_services": {ExportVolume: 1510.33},
		},
		Imports: map[string]ImportResult{
			"industrial_inputs": {ImportVolume: 24810.4},
			"consumer_goods":    {ImportVolume: 9102.77},
			"energy":            {ImportVolume: 8311.013},
		},
	}

	exports, imports := rec.TotalExports(), rec.TotalImports()
	for i := 0; i < 100; i++ {
		assert.Equal(t, exports, rec.TotalExports())
		assert.Equal(t, imports, rec.TotalImports())
	}
}

func TestYearRecord_FailedScansOutcomes(t *testing.T) {
	rec := YearRecord{Outcomes: []Outcome{{Model: "logistics", Status: StepOK}}}
	assert.False(t, rec.Failed())

	rec.Outcomes = append(rec.Outcomes, Outcome{Model: "exchange_rate", Status: StepFailed, Err: "boom"})
	assert.True(t, rec.Failed())
}
