package impact

import (
	"fmt"

	"tariff-impact/internal/model"
)

// MarketLookup resolves an alternative market by name.
// A failed lookup is a data-integrity fault, not a user input error: the
// target market was picked from the loaded set in the first place.
type MarketLookup interface {
	Market(name string) (model.AlternativeMarket, error)
}

// Advisory strings are kept verbatim from the historical tool so that
// saved analyses remain comparable across versions.
const (
	adviceRiskHigh     = "Prioriser une négociation ciblée avec l'USTR et documenter les chaînes de valeur pour obtenir des dérogations."
	adviceRiskModerate = "Maintenir le suivi juridique et renforcer la communication avec les importateurs américains."
	adviceRiskLow      = "Surveiller l'évolution des mesures sans mobiliser de ressources supplémentaires majeures."
	adviceMitigation   = "Accélérer les démarches d'atténuation : preuves d'origine, recours aux exclusions temporaires et optimisation douanière."
	adviceRelocation   = "Étudier un scénario de re-localisation partielle pour réduire la dépendance aux composants sensibles."
	adviceExemption    = "Construire un dossier économique montrant l'effet sur l'emploi américain pour soutenir la demande d'exemption."
)

// rule is one independent advisory guard. Rules are evaluated in fixed
// order and every rule that fires contributes a message; this is not an
// exclusive-choice dispatch.
type rule struct {
	fires   func(p model.AnalysisParameters, m ImpactMetrics) bool
	message func(p model.AnalysisParameters, m ImpactMetrics, markets MarketLookup) (string, error)
}

var rules = []rule{
	// 1. Risk-tier advisory: always fires, one message per tier.
	{
		fires: func(model.AnalysisParameters, ImpactMetrics) bool { return true },
		message: func(_ model.AnalysisParameters, m ImpactMetrics, _ MarketLookup) (string, error) {
			switch m.RiskLevel {
			case model.RiskHigh:
				return adviceRiskHigh, nil
			case model.RiskModerate:
				return adviceRiskModerate, nil
			default:
				return adviceRiskLow, nil
			}
		},
	},
	// 2. Mitigation acceleration: worth pushing when the negotiated rate
	// recovers more than 40% of the surcharge.
	{
		fires: func(_ model.AnalysisParameters, m ImpactMetrics) bool {
			return m.MitigatedSavings > m.AdditionalCost*0.4
		},
		message: func(_ model.AnalysisParameters, _ ImpactMetrics, _ MarketLookup) (string, error) {
			return adviceMitigation, nil
		},
	},
	// 3. Market advisory: always fires; content branches on the stay
	// sentinel versus a concrete diversification target.
	{
		fires: func(model.AnalysisParameters, ImpactMetrics) bool { return true },
		message: func(p model.AnalysisParameters, _ ImpactMetrics, markets MarketLookup) (string, error) {
			if p.TargetMarket == model.StayInCurrentMarket {
				return adviceRelocation, nil
			}
			mk, err := markets.Market(p.TargetMarket)
			if err != nil {
				return "", fmt.Errorf("target market lookup: %w", err)
			}
			return fmt.Sprintf("Diversifier vers %s (tarif moyen %g%%) – %s.", mk.Market, mk.AvgTariff, mk.Notes), nil
		},
	},
	// 4. Exemption case: a target close to the baseline signals a credible
	// exemption request worth documenting.
	{
		fires: func(p model.AnalysisParameters, _ ImpactMetrics) bool {
			return p.NegotiationRate <= p.Record.BaselineTariff*1.2
		},
		message: func(_ model.AnalysisParameters, _ ImpactMetrics, _ MarketLookup) (string, error) {
			return adviceExemption, nil
		},
	},
}

// Recommend evaluates the advisory rules in order and returns every
// message that applies (between 2 and 4 entries). The only error path is
// a missing market in the loaded set, which is reported rather than
// silently substituted.
func Recommend(params model.AnalysisParameters, metrics ImpactMetrics, markets MarketLookup) ([]string, error) {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if !r.fires(params, metrics) {
			continue
		}
		msg, err := r.message(params, metrics, markets)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}
