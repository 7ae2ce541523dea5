package output

import (
	"bytes"
	"encoding/csv"

	"github.com/whatif/growth-simulator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }
func (c CSVSummarizer) Ext() string  { return "csv" }

func (c CSVSummarizer) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AssetClass", "RiskProfile", "Principal", "Years", "FinalValue", "TotalReturn", "ReturnPercentage", "AnnualizedReturnPercentage", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, run := range batch.Runs {
		s := run.Result.Summary
		row := []string{
			run.Name,
			run.Request.AssetClassID,
			run.Request.RiskProfileID,
			run.Request.Principal.StringFixed(2),
			intToString(run.Request.Years),
			s.FinalValue.StringFixed(0),
			s.TotalReturn.StringFixed(0),
			s.ReturnPercentage.StringFixed(2),
			s.AnnualizedReturnPercentage.StringFixed(2),
			boolToString(run.Name == batch.Recommendation.ScenarioName),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
