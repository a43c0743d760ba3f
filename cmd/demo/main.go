package main

import (
	"flag"
	"fmt"

	"tariff-impact/internal/data"
	"tariff-impact/internal/impact"
	"tariff-impact/internal/model"
)

// Demo:
// - Load the tariff scenarios and alternative markets CSVs
// - Build analysis parameters for one sector
// - Compute impact metrics and recommendations to show how the pieces fit
func main() {
	tariffPath := flag.String("tariffs", "data/tariff_scenarios.csv", "Path to tariff scenarios CSV")
	marketsPath := flag.String("markets", "data/alternative_markets.csv", "Path to alternative markets CSV")
	sector := flag.String("sector", "", "Sector to analyze (default: first in file)")
	flag.Parse()

	tariffs, err := data.LoadTariffScenarios(*tariffPath)
	if err != nil {
		panic(err)
	}
	markets, err := data.LoadAlternativeMarkets(*marketsPath)
	if err != nil {
		panic(err)
	}
	if tariffs.Len() == 0 {
		panic("no sectors in tariff file")
	}

	record := tariffs.Records()[0]
	if *sector != "" {
		record, err = tariffs.Sector(*sector)
		if err != nil {
			panic(err)
		}
	}

	// Defaults matching the interactive tool's initial state.
	params := model.AnalysisParameters{
		Record:            record,
		AnnualExportValue: 12.0,
		PassthroughRatio:  0.6,
		NegotiationRate:   record.TrumpTariff * 0.7,
		TargetMarket:      model.StayInCurrentMarket,
	}
	if err := params.Validate(); err != nil {
		panic(err)
	}

	metrics := impact.Compute(params)
	fmt.Printf("%s: surcoût net %.2f M USD, pression %.1f, risque %s\n",
		record.Sector, metrics.AdditionalCost, metrics.PressureIndex, metrics.RiskLevel.Label())

	recommendations, err := impact.Recommend(params, metrics, markets)
	if err != nil {
		panic(err)
	}
	for _, item := range recommendations {
		fmt.Printf("- %s\n", item)
	}
}
