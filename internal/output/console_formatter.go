package output

import (
	"bytes"
	"fmt"

	"github.com/whatif/growth-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WHAT-IF SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, run := range batch.Runs {
		s := run.Result.Summary
		fmt.Fprintf(&buf, "%s: Final=%s Return=%s (%s) Annualized=%s\n",
			run.Name,
			FormatCurrency(s.FinalValue),
			FormatCurrency(s.TotalReturn),
			FormatPercentage(s.ReturnPercentage),
			FormatPercentage(s.AnnualizedReturnPercentage),
		)
	}
	if rec := batch.Recommendation; rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s / %s)\n", rec.ScenarioName, FormatCurrency(rec.FinalValue), FormatPercentage(rec.ReturnPercentage))
	}
	return buf.Bytes(), nil
}
