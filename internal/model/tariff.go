package model

// SectorTariffRecord is one row of the tariff scenarios dataset.
// Rates are percentages of customs value (e.g. 22 means 22%).
//
// Records are loaded once per session and treated as read-only; Sector is
// the unique key.
type SectorTariffRecord struct {
	Sector           string  `json:"sector"`
	HSCode           string  `json:"hs_code"`
	Description      string  `json:"description"`
	BaselineTariff   float64 `json:"baseline_tariff"`
	TrumpTariff      float64 `json:"trump_tariff"`
	SafeguardMeasure string  `json:"safeguard_measure"`
}

// TariffDelta is the surcharge in percentage points over the baseline.
// It may be negative if the baseline already exceeds the elevated rate.
func (r SectorTariffRecord) TariffDelta() float64 {
	return r.TrumpTariff - r.BaselineTariff
}

// AlternativeMarket describes a candidate diversification market.
// Market is the unique key; Notes is free text shown to the user verbatim.
type AlternativeMarket struct {
	Market    string  `json:"market"`
	AvgTariff float64 `json:"avg_tariff"`
	Notes     string  `json:"notes"`
}

// StayInCurrentMarket is the sentinel target-market value meaning the
// exporter keeps selling into the US market rather than diversifying.
// Kept identical to the value the historical tool displayed so saved
// artifacts stay comparable.
const StayInCurrentMarket = "Maintien sur le marché américain"
