package main

import (
	"flag"
	"fmt"
	"os"

	"tariff-impact/internal/analysis"
	"tariff-impact/internal/config"
	"tariff-impact/internal/data"
	"tariff-impact/internal/impact"
	"tariff-impact/internal/model"
	"tariff-impact/internal/session"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "overview":
		cmdOverview(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --sector Acier --value 12 --passthrough 0.6 --rate 15 [--market \"Union européenne\"] [--out analyses_itc.csv]")
	fmt.Println("  cli overview")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze computes impact metrics and recommendations for one sector")
	fmt.Println("  - overview ranks all sectors by tariff surcharge (percentage points)")
	fmt.Println("  - data paths come from --config (default: data/*.csv)")
}

func loadTables(cfgPath string) (*config.Config, *data.TariffTable, *data.MarketTable) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	tariffs, err := data.LoadTariffScenarios(cfg.Data.TariffFile)
	if err != nil {
		fatal(err)
	}
	markets, err := data.LoadAlternativeMarkets(cfg.Data.MarketsFile)
	if err != nil {
		fatal(err)
	}
	return cfg, tariffs, markets
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	sector := fs.String("sector", "", "Sector name from the tariff scenarios file")
	value := fs.Float64("value", 0, "Annual export value in USD millions (0=configured default)")
	passthrough := fs.Float64("passthrough", -1, "Pass-through ratio in [0,1] (-1=configured default)")
	rate := fs.Float64("rate", -1, "Negotiated tariff target in percent (-1=configured default)")
	market := fs.String("market", "", "Alternative market name (default: stay in the current market)")
	outPath := fs.String("out", "", "Optional CSV path to append the analysis to")
	_ = fs.Parse(args)

	if *sector == "" {
		fmt.Println("--sector is required")
		os.Exit(2)
	}

	cfg, tariffs, markets := loadTables(*cfgPath)

	record, err := tariffs.Sector(*sector)
	if err != nil {
		fatal(err)
	}

	params := model.AnalysisParameters{
		Record:            record,
		AnnualExportValue: cfg.Defaults.AnnualExportValue,
		PassthroughRatio:  cfg.Defaults.PassthroughRatio,
		NegotiationRate:   record.TrumpTariff * cfg.Defaults.NegotiationFactor,
		TargetMarket:      model.StayInCurrentMarket,
	}
	if *value > 0 {
		params.AnnualExportValue = *value
	}
	if *passthrough >= 0 {
		params.PassthroughRatio = *passthrough
	}
	if *rate >= 0 {
		params.NegotiationRate = *rate
	}
	if *market != "" {
		params.TargetMarket = *market
	}
	if err := params.Validate(); err != nil {
		fatal(err)
	}

	metrics := impact.Compute(params)
	recommendations, err := impact.Recommend(params, metrics, markets)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s (HS %s) – %s\n", record.Sector, record.HSCode, record.Description)
	fmt.Printf("Tarif de base %.1f%% | Tarif Trump %.1f%% | Scénario atténué %.1f%%\n",
		metrics.BaseRate, metrics.TrumpRate, metrics.NegotiationRate)
	fmt.Printf("Coût pré-2018 %.2f M USD | Coût sous surtaxe %.2f M USD | Surcoût net %.2f M USD\n",
		metrics.BaseCost, metrics.TrumpCost, metrics.AdditionalCost)
	fmt.Printf("Économie visée %.2f M USD | Absorbé %.2f M USD | Répercuté %.2f M USD\n",
		metrics.MitigatedSavings, metrics.ExporterAbsorption, metrics.ClientCost)
	fmt.Printf("Indice de pression %.1f | Risque %s\n", metrics.PressureIndex, metrics.RiskLevel.Label())
	fmt.Println("Recommandations :")
	for _, item := range recommendations {
		fmt.Printf("- %s\n", item)
	}

	if *outPath != "" {
		if err := appendScenario(*outPath, session.Snapshot(params, metrics)); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote analysis to %s\n", *outPath)
	}
}

// appendScenario rewrites the portfolio CSV with the new row appended,
// so the header stays single and the column set stays intact.
func appendScenario(path string, sc session.SavedScenario) error {
	history := []session.SavedScenario{sc}
	if raw, err := os.ReadFile(path); err == nil && len(raw) > 0 {
		existing, err := session.ReadCSV(raw)
		if err != nil {
			return fmt.Errorf("existing portfolio %s: %w", path, err)
		}
		history = append(existing, sc)
	}
	return session.WriteCSVFile(path, history)
}

func cmdOverview(args []string) {
	fs := flag.NewFlagSet("overview", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	_, tariffs, _ := loadTables(*cfgPath)

	ranked := analysis.RankByTariffDelta(tariffs.Records())
	fmt.Printf("%-4s %-28s %-8s %10s %10s %8s\n", "rank", "sector", "hs_code", "baseline", "trump", "delta")
	for i, e := range ranked {
		fmt.Printf("%-4d %-28s %-8s %9.1f%% %9.1f%% %7.1f\n",
			i+1, e.Sector, e.HSCode, e.BaselineTariff, e.TrumpTariff, e.TariffDelta)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
