package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Currency and percentage values travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// YearPoint is one year of a projection, each value rounded to whole currency units.
type YearPoint struct {
	Year         int             `json:"year" yaml:"year"`
	Conservative decimal.Decimal `json:"conservative" yaml:"conservative"`
	Expected     decimal.Decimal `json:"expected" yaml:"expected"`
	Optimistic   decimal.Decimal `json:"optimistic" yaml:"optimistic"`
}

// Summary is derived from the final optimistic value of a projection.
type Summary struct {
	FinalValue                 decimal.Decimal `json:"finalValue" yaml:"final_value"`
	TotalReturn                decimal.Decimal `json:"totalReturn" yaml:"total_return"`
	ReturnPercentage           decimal.Decimal `json:"returnPercentage" yaml:"return_percentage"`
	AnnualizedReturnPercentage decimal.Decimal `json:"annualizedReturnPercentage" yaml:"annualized_return_percentage"`
}

// SimulationResult is the output of a single projection run.
type SimulationResult struct {
	Series  []YearPoint `json:"series" yaml:"series"`
	Summary Summary     `json:"summary" yaml:"summary"`
}

// IsEmpty reports whether the projection produced no data points (years <= 0).
func (r *SimulationResult) IsEmpty() bool {
	return r == nil || len(r.Series) == 0
}

// Final returns the last data point of the series.
func (r *SimulationResult) Final() (YearPoint, bool) {
	if r.IsEmpty() {
		return YearPoint{}, false
	}
	return r.Series[len(r.Series)-1], true
}

// Insights is the narrative shown alongside a projection.
type Insights struct {
	Outlook string   `json:"outlook" yaml:"outlook"`
	Lines   []string `json:"lines" yaml:"lines"`
}

// NamedRequest pairs a simulation request with a scenario name.
type NamedRequest struct {
	Name    string            `json:"name" yaml:"name"`
	Request SimulationRequest `json:"request" yaml:",inline"`
}

// ScenarioRun is one named, fully evaluated simulation.
type ScenarioRun struct {
	Name     string            `json:"name" yaml:"name"`
	Request  SimulationRequest `json:"request" yaml:"request"`
	Result   SimulationResult  `json:"result" yaml:"result"`
	Insights Insights          `json:"insights" yaml:"insights"`
}

// Recommendation names the run with the highest projected value.
type Recommendation struct {
	ScenarioName     string          `json:"scenarioName" yaml:"scenario_name"`
	FinalValue       decimal.Decimal `json:"finalValue" yaml:"final_value"`
	ReturnPercentage decimal.Decimal `json:"returnPercentage" yaml:"return_percentage"`
}

// ScenarioBatch holds several runs evaluated together, in input order.
type ScenarioBatch struct {
	Runs           []ScenarioRun  `json:"runs" yaml:"runs"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// MatrixCell is the outcome of one asset class / risk profile pairing.
type MatrixCell struct {
	AssetClassID   string          `json:"assetClass"`
	RiskProfileID  string          `json:"riskProfile"`
	AdjustedReturn decimal.Decimal `json:"adjustedReturnPercentage"`
	Summary        Summary         `json:"summary"`
}

// ScenarioMatrix projects one principal across every catalog combination.
type ScenarioMatrix struct {
	Principal        decimal.Decimal `json:"principal"`
	Years            int             `json:"years"`
	Cells            []MatrixCell    `json:"cells"`
	MeanFinalValue   decimal.Decimal `json:"meanFinalValue"`
	StdDevFinalValue decimal.Decimal `json:"stdDevFinalValue"`
	Best             MatrixCell      `json:"best"`
	Worst            MatrixCell      `json:"worst"`
}
