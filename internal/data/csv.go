package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tariff-impact/internal/model"
)

// Expected column names. Files may order columns freely; the header row
// decides the mapping. Extra columns are ignored.
const (
	colSector           = "sector"
	colHSCode           = "hs_code"
	colDescription      = "description"
	colBaselineTariff   = "baseline_tariff"
	colTrumpTariff      = "trump_tariff"
	colSafeguardMeasure = "safeguard_measure"

	colMarket    = "market"
	colAvgTariff = "avg_tariff"
	colNotes     = "notes"
)

// LoadTariffScenarios reads the tariff scenarios CSV
// (sector, hs_code, description, baseline_tariff, trump_tariff,
// safeguard_measure). A malformed row is a load error, not a skipped row.
func LoadTariffScenarios(path string) (*TariffTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tariff scenarios: %w", err)
	}
	defer f.Close()

	t, err := ReadTariffScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTariffScenarios parses tariff scenario rows from r.
func ReadTariffScenarios(r io.Reader) (*TariffTable, error) {
	rows, cols, err := readTable(r, []string{
		colSector, colHSCode, colDescription,
		colBaselineTariff, colTrumpTariff, colSafeguardMeasure,
	})
	if err != nil {
		return nil, err
	}

	records := make([]model.SectorTariffRecord, 0, len(rows))
	for i, row := range rows {
		baseline, err := parseRate(row[cols[colBaselineTariff]])
		if err != nil {
			return nil, fmt.Errorf("row %d: baseline_tariff: %w", i+2, err)
		}
		trump, err := parseRate(row[cols[colTrumpTariff]])
		if err != nil {
			return nil, fmt.Errorf("row %d: trump_tariff: %w", i+2, err)
		}
		records = append(records, model.SectorTariffRecord{
			Sector:           row[cols[colSector]],
			HSCode:           row[cols[colHSCode]],
			Description:      row[cols[colDescription]],
			BaselineTariff:   baseline,
			TrumpTariff:      trump,
			SafeguardMeasure: row[cols[colSafeguardMeasure]],
		})
	}
	return NewTariffTable(records)
}

// LoadAlternativeMarkets reads the alternative markets CSV
// (market, avg_tariff, notes).
func LoadAlternativeMarkets(path string) (*MarketTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alternative markets: %w", err)
	}
	defer f.Close()

	t, err := ReadAlternativeMarkets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadAlternativeMarkets parses alternative market rows from r.
func ReadAlternativeMarkets(r io.Reader) (*MarketTable, error) {
	rows, cols, err := readTable(r, []string{colMarket, colAvgTariff, colNotes})
	if err != nil {
		return nil, err
	}

	markets := make([]model.AlternativeMarket, 0, len(rows))
	for i, row := range rows {
		avg, err := parseRate(row[cols[colAvgTariff]])
		if err != nil {
			return nil, fmt.Errorf("row %d: avg_tariff: %w", i+2, err)
		}
		markets = append(markets, model.AlternativeMarket{
			Market:    row[cols[colMarket]],
			AvgTariff: avg,
			Notes:     row[cols[colNotes]],
		})
	}
	return NewMarketTable(markets)
}

// readTable reads a header-mapped CSV and verifies the required columns
// are all present. It returns the data rows and a name→index mapping.
func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, cols, nil
}

func parseRate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("rate must be >= 0, got %v", v)
	}
	return v, nil
}
