// Package session holds the append-only history of saved analyses for
// one running session. The impact engine never depends on it; it is
// owned by whichever presentation layer hosts the tool.
package session

import (
	"sync"

	"tariff-impact/internal/impact"
	"tariff-impact/internal/model"
)

// SavedScenario is a flattened snapshot of one analysis. Never mutated
// after creation, only appended and later serialized.
type SavedScenario struct {
	Sector           string          `json:"sector"`
	AnnualValue      float64         `json:"annual_value"`
	TrumpRate        float64         `json:"trump_rate"`
	NegotiationRate  float64         `json:"negotiation_rate"`
	AdditionalCost   float64         `json:"additional_cost"`
	MitigatedSavings float64         `json:"mitigated_savings"`
	TargetMarket     string          `json:"target_market"`
	RiskLevel        model.RiskLevel `json:"risk_level"`
}

// Snapshot flattens one params+metrics pair into a SavedScenario.
func Snapshot(params model.AnalysisParameters, metrics impact.ImpactMetrics) SavedScenario {
	return SavedScenario{
		Sector:           params.Record.Sector,
		AnnualValue:      params.AnnualExportValue,
		TrumpRate:        metrics.TrumpRate,
		NegotiationRate:  metrics.NegotiationRate,
		AdditionalCost:   metrics.AdditionalCost,
		MitigatedSavings: metrics.MitigatedSavings,
		TargetMarket:     params.TargetMarket,
		RiskLevel:        metrics.RiskLevel,
	}
}

// Store is a growing ordered sequence of saved scenarios. A single mutex
// is enough: appends and snapshots are the only operations.
type Store struct {
	mu        sync.Mutex
	scenarios []SavedScenario
}

func NewStore() *Store { return &Store{} }

// Append records one scenario and returns the new history length.
func (s *Store) Append(sc SavedScenario) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append(s.scenarios, sc)
	return len(s.scenarios)
}

// All returns a copy of the history in append order.
func (s *Store) All() []SavedScenario {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedScenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scenarios)
}
