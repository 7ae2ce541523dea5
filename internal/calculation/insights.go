package calculation

import (
	"fmt"
	"strings"

	"github.com/whatif/growth-simulator/internal/domain"
	money "github.com/whatif/growth-simulator/pkg/decimal"
)

const (
	volatilityInsight      = "Market volatility may cause short-term fluctuations"
	diversificationInsight = "Consider diversifying across multiple asset classes for better risk management"
)

// BuildInsights produces the outlook sentence and key insight lines for a finished run.
// An empty projection still gets an outlook but no insight lines.
func BuildInsights(req domain.SimulationRequest, result *domain.SimulationResult) (domain.Insights, error) {
	ac, err := domain.LookupAssetClass(req.AssetClassID)
	if err != nil {
		return domain.Insights{}, err
	}
	rp, err := domain.LookupRiskProfile(req.RiskProfileID)
	if err != nil {
		return domain.Insights{}, err
	}

	insights := domain.Insights{
		Outlook: fmt.Sprintf("Based on historical data and current market conditions, your %s investment with a %s risk profile shows promising potential.",
			ac.Name, strings.ToLower(rp.Name)),
		Lines: []string{},
	}
	if result.IsEmpty() {
		return insights, nil
	}

	insights.Lines = append(insights.Lines,
		fmt.Sprintf("Your investment could grow to %s in %d years",
			money.NewMoneyFromDecimal(result.Summary.FinalValue).Format(), req.Years),
		fmt.Sprintf("Expected annual return: %s%%", result.Summary.AnnualizedReturnPercentage.StringFixed(2)),
		volatilityInsight,
		diversificationInsight,
	)
	return insights, nil
}
