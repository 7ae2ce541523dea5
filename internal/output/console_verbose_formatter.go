package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/whatif/growth-simulator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// per-scenario year tables, summaries and insights.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }
func (c ConsoleVerboseFormatter) Ext() string  { return "txt" }

func (c ConsoleVerboseFormatter) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "WHAT-IF INVESTMENT GROWTH ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions() {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, run := range batch.Runs {
		writeScenario(&buf, i+1, run)
	}

	if rec := batch.Recommendation; rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "Highest projected value: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "  Final Value:        %s\n", FormatCurrency(rec.FinalValue))
		fmt.Fprintf(&buf, "  Return Percentage:  %s\n", FormatPercentage(rec.ReturnPercentage))
	}
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, n int, run domain.ScenarioRun) {
	req := run.Request
	fmt.Fprintf(buf, "SCENARIO %d: %s\n", n, run.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "Principal: %s  Horizon: %d years  Asset: %s  Risk: %s\n",
		FormatCurrency(req.Principal), req.Years, req.AssetClassID, req.RiskProfileID)
	fmt.Fprintln(buf)

	if run.Result.IsEmpty() {
		fmt.Fprintln(buf, "No projection for a horizon of zero years.")
		fmt.Fprintln(buf)
		return
	}

	fmt.Fprintf(buf, "%-6s %18s %18s %18s\n", "Year", "Conservative", "Expected", "Optimistic")
	fmt.Fprintln(buf, strings.Repeat("-", 63))
	for _, p := range run.Result.Series {
		fmt.Fprintf(buf, "%-6d %18s %18s %18s\n", p.Year,
			FormatCurrency(p.Conservative), FormatCurrency(p.Expected), FormatCurrency(p.Optimistic))
	}
	fmt.Fprintln(buf)

	s := run.Result.Summary
	fmt.Fprintln(buf, "SUMMARY:")
	fmt.Fprintf(buf, "  Final Value:          %s\n", FormatCurrency(s.FinalValue))
	fmt.Fprintf(buf, "  Total Return:         %s\n", FormatCurrency(s.TotalReturn))
	fmt.Fprintf(buf, "  Return Percentage:    %s\n", FormatPercentage(s.ReturnPercentage))
	fmt.Fprintf(buf, "  Annualized Return:    %s\n", FormatPercentage(s.AnnualizedReturnPercentage))
	fmt.Fprintln(buf)

	if run.Insights.Outlook != "" {
		fmt.Fprintln(buf, "INSIGHTS:")
		fmt.Fprintf(buf, "  %s\n", run.Insights.Outlook)
		for _, line := range run.Insights.Lines {
			fmt.Fprintf(buf, "  - %s\n", line)
		}
		fmt.Fprintln(buf)
	}
}
