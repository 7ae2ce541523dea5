package calculation

import (
	"context"
	"fmt"

	"github.com/whatif/growth-simulator/internal/domain"
)

// RunScenario projects one named request and attaches its insights.
func (pe *ProjectionEngine) RunScenario(nr domain.NamedRequest) (*domain.ScenarioRun, error) {
	result, err := pe.Project(nr.Request)
	if err != nil {
		return nil, err
	}
	insights, err := BuildInsights(nr.Request, result)
	if err != nil {
		return nil, err
	}
	return &domain.ScenarioRun{
		Name:     nr.Name,
		Request:  nr.Request,
		Result:   *result,
		Insights: insights,
	}, nil
}

// RunScenarios runs every named request in order and recommends the run with the
// highest projected value. The first failing run aborts the batch.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, requests []domain.NamedRequest) (*domain.ScenarioBatch, error) {
	batch := &domain.ScenarioBatch{Runs: make([]domain.ScenarioRun, 0, len(requests))}

	for i, nr := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run, err := pe.RunScenario(nr)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, nr.Name, err)
		}
		batch.Runs = append(batch.Runs, *run)
	}

	batch.Recommendation = Recommend(batch.Runs)
	return batch, nil
}

// Recommend picks the run with the highest final value. Ties keep the earliest run.
func Recommend(runs []domain.ScenarioRun) domain.Recommendation {
	var best *domain.ScenarioRun
	for i := range runs {
		if runs[i].Result.IsEmpty() {
			continue
		}
		if best == nil || runs[i].Result.Summary.FinalValue.GreaterThan(best.Result.Summary.FinalValue) {
			best = &runs[i]
		}
	}
	if best == nil {
		return domain.Recommendation{}
	}
	return domain.Recommendation{
		ScenarioName:     best.Name,
		FinalValue:       best.Result.Summary.FinalValue,
		ReturnPercentage: best.Result.Summary.ReturnPercentage,
	}
}
