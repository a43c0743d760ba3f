package model

import (
	"errors"
	"fmt"
	"math"
)

// NegotiationRateCeiling is the floor on the upper bound of the
// negotiation-rate range: the slider always allows at least 35%, even for
// sectors whose elevated rate is low.
const NegotiationRateCeiling = 35.0

// AnalysisParameters are the inputs to one impact computation.
// Units:
// - AnnualExportValue: USD millions
// - PassthroughRatio: fraction 0..1 passed on to the client
// - NegotiationRate: percentage, expected within [baseline, max(trump*1.2, 35)]
// - TargetMarket: StayInCurrentMarket or a market name from the loaded set
type AnalysisParameters struct {
	Record            SectorTariffRecord
	AnnualExportValue float64
	PassthroughRatio  float64
	NegotiationRate   float64
	TargetMarket      string
}

// NegotiationRateMax is the upper bound of the admissible negotiation
// range for this sector.
func (p AnalysisParameters) NegotiationRateMax() float64 {
	return math.Max(p.Record.TrumpTariff*1.2, NegotiationRateCeiling)
}

// Validate enforces the ranges the interactive UI would enforce.
// The impact engine itself does not validate: callers that bypass
// Validate get unclamped arithmetic, which is intentional.
func (p AnalysisParameters) Validate() error {
	if p.Record.Sector == "" {
		return errors.New("sector record is required")
	}
	if p.Record.BaselineTariff < 0 || p.Record.TrumpTariff < 0 {
		return errors.New("tariff rates must be >= 0")
	}
	if p.AnnualExportValue < 0 {
		return errors.New("AnnualExportValue must be >= 0")
	}
	if p.PassthroughRatio < 0 || p.PassthroughRatio > 1 {
		return errors.New("PassthroughRatio must be in [0, 1]")
	}
	if max := p.NegotiationRateMax(); p.NegotiationRate < p.Record.BaselineTariff || p.NegotiationRate > max {
		return fmt.Errorf("NegotiationRate must be in [%.1f, %.1f]", p.Record.BaselineTariff, max)
	}
	if p.TargetMarket == "" {
		return errors.New("TargetMarket is required")
	}
	return nil
}
