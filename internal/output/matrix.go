package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/whatif/growth-simulator/internal/domain"
)

// FormatMatrix renders a scenario matrix as console text, JSON or CSV.
func FormatMatrix(m *domain.ScenarioMatrix, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		return matrixConsole(m), nil
	case "json":
		return json.MarshalIndent(m, "", "  ")
	case "csv", "summary-csv":
		return matrixCSV(m)
	default:
		return nil, fmt.Errorf("%w: %q for matrix output (use console, json or csv)", ErrUnsupportedFormat, format)
	}
}

func matrixConsole(m *domain.ScenarioMatrix) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SCENARIO MATRIX: %s over %d years\n", FormatCurrency(m.Principal), m.Years)
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "%-12s %-13s %9s %16s %12s %11s\n", "Asset", "Risk", "Adjusted", "Final Value", "Return", "Annualized")
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	for _, c := range m.Cells {
		fmt.Fprintf(&buf, "%-12s %-13s %9s %16s %12s %11s\n",
			c.AssetClassID, c.RiskProfileID,
			FormatPercentage(c.AdjustedReturn),
			FormatCurrency(c.Summary.FinalValue),
			FormatPercentage(c.Summary.ReturnPercentage),
			FormatPercentage(c.Summary.AnnualizedReturnPercentage))
	}
	if m.Years <= 0 {
		return buf.Bytes()
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Mean final value:   %s\n", FormatCurrency(m.MeanFinalValue))
	fmt.Fprintf(&buf, "Std deviation:      %s\n", FormatCurrency(m.StdDevFinalValue))
	fmt.Fprintf(&buf, "Best:  %s / %s (%s)\n", m.Best.AssetClassID, m.Best.RiskProfileID, FormatCurrency(m.Best.Summary.FinalValue))
	fmt.Fprintf(&buf, "Worst: %s / %s (%s)\n", m.Worst.AssetClassID, m.Worst.RiskProfileID, FormatCurrency(m.Worst.Summary.FinalValue))
	return buf.Bytes()
}

func matrixCSV(m *domain.ScenarioMatrix) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"AssetClass", "RiskProfile", "AdjustedReturnPercentage", "FinalValue", "TotalReturn", "ReturnPercentage", "AnnualizedReturnPercentage"}); err != nil {
		return nil, err
	}
	for _, c := range m.Cells {
		row := []string{
			c.AssetClassID,
			c.RiskProfileID,
			c.AdjustedReturn.StringFixed(2),
			c.Summary.FinalValue.StringFixed(0),
			c.Summary.TotalReturn.StringFixed(0),
			c.Summary.ReturnPercentage.StringFixed(2),
			c.Summary.AnnualizedReturnPercentage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
