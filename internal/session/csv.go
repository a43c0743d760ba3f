package session

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"tariff-impact/internal/model"
)

// Column set of the exported portfolio CSV. Downstream spreadsheets key
// on these exact headers; do not rename or reorder.
var exportHeader = []string{
	"Secteur",
	"Valeur exportée (M USD)",
	"Tarif Trump (%)",
	"Tarif atténué (%)",
	"Surcoût net (M USD)",
	"Économie visée (M USD)",
	"Marché prioritaire",
	"Risque",
}

// WriteCSV serializes the scenarios in append order.
func WriteCSV(w io.Writer, scenarios []SavedScenario) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, sc := range scenarios {
		row := []string{
			sc.Sector,
			fmtFloat(sc.AnnualValue),
			fmtFloat(sc.TrumpRate),
			fmtFloat(sc.NegotiationRate),
			fmtFloat(sc.AdditionalCost),
			fmtFloat(sc.MitigatedSavings),
			sc.TargetMarket,
			sc.RiskLevel.Label(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteCSVFile writes the portfolio to a file path.
func WriteCSVFile(path string, scenarios []SavedScenario) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, scenarios)
}

// ReadCSV parses a portfolio previously produced by WriteCSV, so tools
// can append to an existing export without duplicating the header.
func ReadCSV(raw []byte) ([]SavedScenario, error) {
	cr := csv.NewReader(bytes.NewReader(raw))
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows[0]) != len(exportHeader) || rows[0][0] != exportHeader[0] {
		return nil, fmt.Errorf("unexpected portfolio header %v", rows[0])
	}

	out := make([]SavedScenario, 0, len(rows)-1)
	for i, row := range rows[1:] {
		sc := SavedScenario{
			Sector:       row[0],
			TargetMarket: row[6],
			RiskLevel:    riskFromLabel(row[7]),
		}
		fields := map[int]*float64{
			1: &sc.AnnualValue,
			2: &sc.TrumpRate,
			3: &sc.NegotiationRate,
			4: &sc.AdditionalCost,
			5: &sc.MitigatedSavings,
		}
		for col, dst := range fields {
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: %w", i+2, exportHeader[col], err)
			}
			*dst = v
		}
		out = append(out, sc)
	}
	return out, nil
}

func riskFromLabel(label string) model.RiskLevel {
	switch label {
	case model.RiskLow.Label():
		return model.RiskLow
	case model.RiskModerate.Label():
		return model.RiskModerate
	case model.RiskHigh.Label():
		return model.RiskHigh
	default:
		return model.RiskLevel(label)
	}
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
