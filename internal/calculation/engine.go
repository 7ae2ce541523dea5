package calculation

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/domain"
	money "github.com/whatif/growth-simulator/pkg/decimal"
)

// Fractions of the adjusted return used for the three projection curves.
var (
	ConservativeFactor = decimal.RequireFromString("0.6")
	ExpectedFactor     = decimal.RequireFromString("0.8")
	OptimisticFactor   = decimal.RequireFromString("1.2")
)

var decimalHundred = decimal.NewFromInt(100)

// ProjectionEngine turns simulation requests into multi-scenario growth projections.
// It holds no per-run state and is safe for concurrent use.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// AdjustedReturn scales the asset class average return (a percentage) by the risk
// multiplier and returns it as a fraction, e.g. 10% moderate -> 0.10.
func AdjustedReturn(ac domain.AssetClass, rp domain.RiskProfile) decimal.Decimal {
	return ac.AverageAnnualReturn.Div(decimalHundred).Mul(rp.Multiplier)
}

// Project computes the conservative, expected and optimistic value series for
// year 0 through req.Years inclusive, plus the summary of the optimistic curve.
// A horizon of zero or fewer years yields an empty series and a zero summary.
func (pe *ProjectionEngine) Project(req domain.SimulationRequest) (*domain.SimulationResult, error) {
	ac, err := domain.LookupAssetClass(req.AssetClassID)
	if err != nil {
		return nil, err
	}
	rp, err := domain.LookupRiskProfile(req.RiskProfileID)
	if err != nil {
		return nil, err
	}

	adjusted := AdjustedReturn(ac, rp)
	conservativeRate := adjusted.Mul(ConservativeFactor)
	expectedRate := adjusted.Mul(ExpectedFactor)
	optimisticRate := adjusted.Mul(OptimisticFactor)

	pe.logger().Debugf("projecting %s over %d years: %s/%s adjusted return %s",
		req.Principal.String(), req.Years, ac.ID, rp.ID, adjusted.String())

	if req.Years <= 0 {
		pe.logger().Warnf("degenerate horizon of %d years, returning an empty projection", req.Years)
		return &domain.SimulationResult{Series: []domain.YearPoint{}}, nil
	}

	principal := money.NewMoneyFromDecimal(req.Principal)
	series := make([]domain.YearPoint, 0, req.Years+1)
	for year := 0; year <= req.Years; year++ {
		series = append(series, domain.YearPoint{
			Year:         year,
			Conservative: principal.Compound(conservativeRate, year).RoundWhole().Decimal,
			Expected:     principal.Compound(expectedRate, year).RoundWhole().Decimal,
			Optimistic:   principal.Compound(optimisticRate, year).RoundWhole().Decimal,
		})
	}

	return &domain.SimulationResult{
		Series:  series,
		Summary: Summarize(req.Principal, req.Years, series),
	}, nil
}

// Summarize derives the headline figures from the final optimistic value.
func Summarize(principal decimal.Decimal, years int, series []domain.YearPoint) domain.Summary {
	if len(series) == 0 || years <= 0 {
		return domain.Summary{}
	}
	final := series[len(series)-1].Optimistic
	total := money.NewMoneyFromDecimal(final).Sub(money.NewMoneyFromDecimal(principal)).Decimal
	summary := domain.Summary{
		FinalValue:  final,
		TotalReturn: total,
	}
	if !principal.IsPositive() {
		return summary
	}
	summary.ReturnPercentage = total.Div(principal).Mul(decimalHundred).Round(2)

	// nth root of the growth ratio; shopspring has no fractional power we can trust here
	ratio := final.Div(principal).InexactFloat64()
	annualized := (math.Pow(ratio, 1/float64(years)) - 1) * 100
	summary.AnnualizedReturnPercentage = decimal.NewFromFloat(annualized).Round(2)
	return summary
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}
