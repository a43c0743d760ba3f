package data

import (
	"fmt"
	"sort"

	"tariff-impact/internal/model"
)

// TariffTable holds the loaded sector tariff records, keyed by sector.
// Loaded once, read-only for the lifetime of an analysis session.
type TariffTable struct {
	records  []model.SectorTariffRecord
	bySector map[string]model.SectorTariffRecord
}

// NewTariffTable builds a table from records, rejecting duplicate sectors.
func NewTariffTable(records []model.SectorTariffRecord) (*TariffTable, error) {
	t := &TariffTable{
		records:  records,
		bySector: make(map[string]model.SectorTariffRecord, len(records)),
	}
	for _, r := range records {
		if _, dup := t.bySector[r.Sector]; dup {
			return nil, fmt.Errorf("duplicate sector %q", r.Sector)
		}
		t.bySector[r.Sector] = r
	}
	return t, nil
}

// Sector looks up one record. A miss is a data-integrity fault for
// callers that picked the sector from this table, so it is an explicit
// error rather than a zero value.
func (t *TariffTable) Sector(name string) (model.SectorTariffRecord, error) {
	r, ok := t.bySector[name]
	if !ok {
		return model.SectorTariffRecord{}, fmt.Errorf("unknown sector %q", name)
	}
	return r, nil
}

// Records returns the rows in file order.
func (t *TariffTable) Records() []model.SectorTariffRecord {
	return t.records
}

// Sectors returns the sector names sorted alphabetically.
func (t *TariffTable) Sectors() []string {
	out := make([]string, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r.Sector)
	}
	sort.Strings(out)
	return out
}

func (t *TariffTable) Len() int { return len(t.records) }

// MarketTable holds the loaded alternative markets, keyed by market name.
type MarketTable struct {
	markets  []model.AlternativeMarket
	byMarket map[string]model.AlternativeMarket
}

func NewMarketTable(markets []model.AlternativeMarket) (*MarketTable, error) {
	t := &MarketTable{
		markets:  markets,
		byMarket: make(map[string]model.AlternativeMarket, len(markets)),
	}
	for _, m := range markets {
		if _, dup := t.byMarket[m.Market]; dup {
			return nil, fmt.Errorf("duplicate market %q", m.Market)
		}
		t.byMarket[m.Market] = m
	}
	return t, nil
}

// Market looks up one market; missing names are reported, never defaulted.
func (t *MarketTable) Market(name string) (model.AlternativeMarket, error) {
	m, ok := t.byMarket[name]
	if !ok {
		return model.AlternativeMarket{}, fmt.Errorf("unknown market %q", name)
	}
	return m, nil
}

// Markets returns the rows in file order.
func (t *MarketTable) Markets() []model.AlternativeMarket {
	return t.markets
}

// Names returns the market names sorted alphabetically.
func (t *MarketTable) Names() []string {
	out := make([]string, 0, len(t.markets))
	for _, m := range t.markets {
		out = append(out, m.Market)
	}
	sort.Strings(out)
	return out
}

func (t *MarketTable) Len() int { return len(t.markets) }
