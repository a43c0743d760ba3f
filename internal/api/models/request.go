package models

// AnalyzeRequest represents the request body for running one analysis.
// Numeric fields are pointers so that omitted values fall back to the
// configured defaults instead of zero.
type AnalyzeRequest struct {
	Sector            string   `json:"sector" binding:"required"`
	AnnualExportValue *float64 `json:"annual_export_value,omitempty" binding:"omitempty,gte=0"`
	PassthroughRatio  *float64 `json:"passthrough_ratio,omitempty" binding:"omitempty,gte=0,lte=1"`
	NegotiationRate   *float64 `json:"negotiation_rate,omitempty" binding:"omitempty,gte=0"`
	// TargetMarket defaults to the stay-in-current-market sentinel.
	TargetMarket string `json:"target_market,omitempty"`
	// Save appends the result to the session history.
	Save bool `json:"save,omitempty"`
}
