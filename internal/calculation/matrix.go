package calculation

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// ProjectMatrix projects the same principal and horizon across every asset class and
// risk profile, in catalog order, and reports the spread of the final values.
func (pe *ProjectionEngine) ProjectMatrix(principal decimal.Decimal, years int) (*domain.ScenarioMatrix, error) {
	m := &domain.ScenarioMatrix{Principal: principal, Years: years}

	// spread is measured on growth ratios; raw final values overflow float64 for huge principals
	ratios := make([]float64, 0, len(domain.AssetClassIDs())*len(domain.RiskProfileIDs()))
	for _, ac := range domain.AssetClasses() {
		for _, rp := range domain.RiskProfiles() {
			result, err := pe.Project(domain.SimulationRequest{
				Principal:     principal,
				Years:         years,
				AssetClassID:  ac.ID,
				RiskProfileID: rp.ID,
			})
			if err != nil {
				return nil, err
			}
			cell := domain.MatrixCell{
				AssetClassID:   ac.ID,
				RiskProfileID:  rp.ID,
				AdjustedReturn: AdjustedReturn(ac, rp).Mul(decimalHundred),
				Summary:        result.Summary,
			}
			m.Cells = append(m.Cells, cell)
			if principal.IsPositive() {
				ratios = append(ratios, cell.Summary.FinalValue.Div(principal).InexactFloat64())
			}
		}
	}

	if years <= 0 {
		return m, nil
	}

	if len(ratios) == len(m.Cells) {
		mean, std := stat.PopMeanStdDev(ratios, nil)
		if isFinite(mean) && isFinite(std) {
			m.MeanFinalValue = principal.Mul(decimal.NewFromFloat(mean)).Round(2)
			m.StdDevFinalValue = principal.Mul(decimal.NewFromFloat(std)).Round(2)
		}
	}

	m.Best, m.Worst = m.Cells[0], m.Cells[0]
	for _, c := range m.Cells[1:] {
		if c.Summary.FinalValue.GreaterThan(m.Best.Summary.FinalValue) {
			m.Best = c
		}
		if c.Summary.FinalValue.LessThan(m.Worst.Summary.FinalValue) {
			m.Worst = c
		}
	}
	return m, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
