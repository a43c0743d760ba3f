package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() AnalysisParameters {
	return AnalysisParameters{
		Record: SectorTariffRecord{
			Sector:         "Acier",
			BaselineTariff: 2,
			TrumpTariff:    22,
		},
		AnnualExportValue: 12,
		PassthroughRatio:  0.6,
		NegotiationRate:   15,
		TargetMarket:      StayInCurrentMarket,
	}
}

func TestAnalysisParameters_Validate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	cases := []struct {
		name    string
		mutate  func(*AnalysisParameters)
		wantErr string
	}{
		{"missing sector", func(p *AnalysisParameters) { p.Record.Sector = "" }, "sector record"},
		{"negative rate", func(p *AnalysisParameters) { p.Record.BaselineTariff = -1 }, "tariff rates"},
		{"negative value", func(p *AnalysisParameters) { p.AnnualExportValue = -1 }, "AnnualExportValue"},
		{"passthrough below zero", func(p *AnalysisParameters) { p.PassthroughRatio = -0.1 }, "PassthroughRatio"},
		{"passthrough above one", func(p *AnalysisParameters) { p.PassthroughRatio = 1.1 }, "PassthroughRatio"},
		{"negotiation below baseline", func(p *AnalysisParameters) { p.NegotiationRate = 1.9 }, "NegotiationRate"},
		{"negotiation above ceiling", func(p *AnalysisParameters) { p.NegotiationRate = 40 }, "NegotiationRate"},
		{"missing market", func(p *AnalysisParameters) { p.TargetMarket = "" }, "TargetMarket"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNegotiationRateMax(t *testing.T) {
	p := validParams()

	// trump*1.2 = 26.4 is below the 35% floor.
	assert.Equal(t, 35.0, p.NegotiationRateMax())

	// A high elevated rate lifts the bound above the floor.
	p.Record.TrumpTariff = 40
	assert.InDelta(t, 48.0, p.NegotiationRateMax(), 1e-9)
}

func TestRiskLevel_Label(t *testing.T) {
	assert.Equal(t, "Faible", RiskLow.Label())
	assert.Equal(t, "Modéré", RiskModerate.Label())
	assert.Equal(t, "Élevé", RiskHigh.Label())
}
