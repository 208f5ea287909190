package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nayeemz/bdtradesim/config"
)

// Source holds observed trade flows aggregated per year and sector, in
// million USD. It implements models.SectorDataSource.
type Source struct {
	countries map[int]string
	products  map[string]string
	exports   map[int]map[string]float64 // year -> sector -> export value
}

// Load reads the reference CSVs named in cfg. The trade-flow file is
// mandatory; the two code tables are optional lookups.
func Load(cfg config.DataConfig, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Source{
		countries: map[int]string{},
		products:  map[string]string{},
		exports:   map[int]map[string]float64{},
	}

	if cfg.CountryCodesFile != "" {
		if err := s.loadCountries(filepath.Join(cfg.Dir, cfg.CountryCodesFile)); err != nil {
			logger.Warn("country codes unavailable", "err", err)
		}
	}
	if cfg.ProductCodesFile != "" {
		if err := s.loadProducts(filepath.Join(cfg.Dir, cfg.ProductCodesFile)); err != nil {
			logger.Warn("product codes unavailable", "err", err)
		}
	}

	path := filepath.Join(cfg.Dir, cfg.TradeFlowsFile)
	rows, err := s.loadFlows(path, cfg.ReporterCode)
	if err != nil {
		return nil, fmt.Errorf("data.Load: %w", err)
	}

	logger.Info("observed trade data loaded",
		"file", path, "rows", rows, "years", len(s.exports))
	return s, nil
}

// SectorExports returns the observed per-sector export values for a year,
// reporting whether the dataset covers it.
func (s *Source) SectorExports(year int) (map[string]float64, bool) {
	vals, ok := s.exports[year]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(vals))
	for k, v := range vals {
		out[k] = v
	}
	return out, true
}

// Years lists the years the dataset covers.
func (s *Source) Years() []int {
	years := make([]int, 0, len(s.exports))
	for y := range s.exports {
		years = append(years, y)
	}
	return years
}

// CountryName resolves a numeric country code from the reference table.
func (s *Source) CountryName(code int) (string, bool) {
	name, ok := s.countries[code]
	return name, ok
}

// ProductDescription resolves an HS product code from the reference table.
func (s *Source) ProductDescription(code string) (string, bool) {
	desc, ok := s.products[code]
	return desc, ok
}

// loadFlows streams the trade-flow CSV row by row, so arbitrarily large files
// stay memory-bounded. Columns: t (year), i (reporter), j (partner),
// k (HS code), v (value, thousand USD), q (quantity). Rows where the reporter
// matches are exports; values convert to million USD.
func (s *Source) loadFlows(path string, reporter int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open trade flows: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read trade-flow header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, want := range []string{"t", "i", "j", "k", "v"} {
		if _, ok := col[want]; !ok {
			return 0, fmt.Errorf("trade flows %q: missing column %q", path, want)
		}
	}

	rows := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read trade flows: %w", err)
		}

		i, err := strconv.Atoi(record[col["i"]])
		if err != nil || i != reporter {
			continue
		}
		year, err := strconv.Atoi(record[col["t"]])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(record[col["v"]], 64)
		if err != nil {
			continue
		}

		sector := SectorForHS(record[col["k"]])
		if s.exports[year] == nil {
			s.exports[year] = map[string]float64{}
		}
		s.exports[year][sector] += value / 1000 // thousand USD -> million USD
		rows++
	}

	if rows == 0 {
		return 0, fmt.Errorf("trade flows %q: no rows for reporter %d", path, reporter)
	}
	return rows, nil
}

func (s *Source) loadCountries(path string) error {
	return readTable(path, "country_code", "country_name", func(code, name string) {
		if c, err := strconv.Atoi(code); err == nil {
			s.countries[c] = name
		}
	})
}

func (s *Source) loadProducts(path string) error {
	return readTable(path, "code", "description", func(code, desc string) {
		s.products[code] = desc
	})
}

// readTable reads a two-column reference CSV, resolving the columns by name.
func readTable(path, keyCol, valCol string, add func(key, val string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header %q: %w", path, err)
	}
	keyIdx, valIdx := -1, -1
	for i, name := range header {
		switch name {
		case keyCol:
			keyIdx = i
		case valCol:
			valIdx = i
		}
	}
	if keyIdx < 0 || valIdx < 0 {
		return fmt.Errorf("%q: missing columns %q/%q", path, keyCol, valCol)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		if len(record) > keyIdx && len(record) > valIdx {
			add(record[keyIdx], record[valIdx])
		}
	}
}
