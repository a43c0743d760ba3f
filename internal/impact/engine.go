package impact

import "tariff-impact/internal/model"

// ImpactMetrics is the full set of derived figures for one analysis.
// Every field is a pure function of the AnalysisParameters that produced
// it; there is no hidden state and no history dependence.
//
// Cost fields are USD millions, rate fields are percentages.
type ImpactMetrics struct {
	BaseRate        float64 `json:"base_rate"`
	TrumpRate       float64 `json:"trump_rate"`
	NegotiationRate float64 `json:"negotiation_rate"`

	BaseCost       float64 `json:"base_cost"`
	TrumpCost      float64 `json:"trump_cost"`
	NegotiatedCost float64 `json:"negotiated_cost"`

	// AdditionalCost is the net surcharge versus the baseline; it may be
	// negative when the baseline rate exceeds the elevated rate.
	AdditionalCost float64 `json:"additional_cost"`
	// MitigatedSavings is what the negotiated rate saves versus the
	// elevated rate; negative when "mitigation" would increase cost.
	MitigatedSavings float64 `json:"mitigated_savings"`

	ExporterAbsorption float64 `json:"exporter_absorption"`
	ClientCost         float64 `json:"client_cost"`

	PressureIndex float64         `json:"pressure_index"`
	RiskLevel     model.RiskLevel `json:"risk_level"`
}

// Compute derives all impact metrics from the parameters.
// Pure arithmetic, no error path: out-of-range inputs propagate through
// the formulas unclamped.
func Compute(params model.AnalysisParameters) ImpactMetrics {
	baseRate := params.Record.BaselineTariff
	trumpRate := params.Record.TrumpTariff
	negotiationRate := params.NegotiationRate
	value := params.AnnualExportValue

	baseCost := value * baseRate / 100
	trumpCost := value * trumpRate / 100
	negotiatedCost := value * negotiationRate / 100

	additionalCost := trumpCost - baseCost
	mitigatedSavings := trumpCost - negotiatedCost

	pressureIndex := (trumpRate - baseRate) * (value / 10)

	return ImpactMetrics{
		BaseRate:        baseRate,
		TrumpRate:       trumpRate,
		NegotiationRate: negotiationRate,

		BaseCost:       baseCost,
		TrumpCost:      trumpCost,
		NegotiatedCost: negotiatedCost,

		AdditionalCost:   additionalCost,
		MitigatedSavings: mitigatedSavings,

		ExporterAbsorption: additionalCost * (1 - params.PassthroughRatio),
		ClientCost:         additionalCost * params.PassthroughRatio,

		PressureIndex: pressureIndex,
		RiskLevel:     model.RiskFromPressureIndex(pressureIndex),
	}
}
