package models

import (
	"tariff-impact/internal/impact"
	"tariff-impact/internal/model"
)

// AnalyzeResponse represents the result of one analysis run.
type AnalyzeResponse struct {
	Sector          model.SectorTariffRecord `json:"sector"`
	Metrics         impact.ImpactMetrics     `json:"metrics"`
	RiskLabel       string                   `json:"risk_label"`
	Recommendations []string                 `json:"recommendations"`
	// SavedCount is the session history length after an optional save;
	// zero when the analysis was not saved.
	SavedCount int `json:"saved_count,omitempty"`
}

// SectorsResponse lists the loaded tariff records.
type SectorsResponse struct {
	Sectors []model.SectorTariffRecord `json:"sectors"`
}

// MarketsResponse lists the loaded alternative markets, plus the sentinel
// value clients use for "keep the current market".
type MarketsResponse struct {
	StaySentinel string                    `json:"stay_sentinel"`
	Markets      []model.AlternativeMarket `json:"markets"`
}

// ExposureResponse ranks sectors by tariff surcharge.
type ExposureResponse struct {
	Rankings []ExposureRanking `json:"rankings"`
}

// ExposureRanking is one ranked sector.
type ExposureRanking struct {
	Rank             int     `json:"rank"`
	Sector           string  `json:"sector"`
	HSCode           string  `json:"hs_code"`
	BaselineTariff   float64 `json:"baseline_tariff"`
	TrumpTariff      float64 `json:"trump_tariff"`
	TariffDelta      float64 `json:"tariff_delta"`
	SafeguardMeasure string  `json:"safeguard_measure"`
}

// ScenariosResponse lists the saved session history in append order.
type ScenariosResponse struct {
	Count     int             `json:"count"`
	Scenarios []ScenarioEntry `json:"scenarios"`
}

// ScenarioEntry is one saved analysis snapshot.
type ScenarioEntry struct {
	Index            int     `json:"index"`
	Sector           string  `json:"sector"`
	AnnualValue      float64 `json:"annual_value"`
	TrumpRate        float64 `json:"trump_rate"`
	NegotiationRate  float64 `json:"negotiation_rate"`
	AdditionalCost   float64 `json:"additional_cost"`
	MitigatedSavings float64 `json:"mitigated_savings"`
	TargetMarket     string  `json:"target_market"`
	RiskLevel        string  `json:"risk_level"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
