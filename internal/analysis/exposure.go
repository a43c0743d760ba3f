// Package analysis provides dataset-wide summaries on top of the loaded
// tariff table, independent of any single analysis invocation.
package analysis

import (
	"sort"

	"tariff-impact/internal/model"
)

// SectorExposure summarizes one sector's tariff surcharge for ranking.
type SectorExposure struct {
	Sector           string
	HSCode           string
	BaselineTariff   float64
	TrumpTariff      float64
	TariffDelta      float64
	SafeguardMeasure string
}

// RankByTariffDelta computes per-sector exposure and sorts descending by
// the surcharge in percentage points. Ties keep the input (file) order.
func RankByTariffDelta(records []model.SectorTariffRecord) []SectorExposure {
	out := make([]SectorExposure, 0, len(records))
	for _, r := range records {
		out = append(out, SectorExposure{
			Sector:           r.Sector,
			HSCode:           r.HSCode,
			BaselineTariff:   r.BaselineTariff,
			TrumpTariff:      r.TrumpTariff,
			TariffDelta:      r.TariffDelta(),
			SafeguardMeasure: r.SafeguardMeasure,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TariffDelta > out[j].TariffDelta
	})
	return out
}
