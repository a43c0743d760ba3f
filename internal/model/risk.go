package model

// RiskLevel buckets the commercial pressure on a sector.
// Keep these values stable; they are intended for CSV/JSON output.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// riskThresholds maps a strict upper bound on the pressure index to a
// tier. Evaluated in order; the first bound that holds wins, and High is
// the fallthrough. Exactly 6 is Moderate, exactly 15 is High.
var riskThresholds = []struct {
	below float64
	level RiskLevel
}{
	{6, RiskLow},
	{15, RiskModerate},
}

func RiskFromPressureIndex(pressureIndex float64) RiskLevel {
	for _, t := range riskThresholds {
		if pressureIndex < t.below {
			return t.level
		}
	}
	return RiskHigh
}

// Label returns the French display label used by the historical tool.
// Saved-scenario exports depend on these exact strings.
func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "Faible"
	case RiskModerate:
		return "Modéré"
	case RiskHigh:
		return "Élevé"
	default:
		return string(r)
	}
}
