package calculation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatif/growth-simulator/internal/domain"
)

func TestRunScenarios_RecommendsHighestFinalValue(t *testing.T) {
	engine := NewProjectionEngine()
	batch, err := engine.RunScenarios(context.Background(), []domain.NamedRequest{
		{Name: "Bonds", Request: request(10000, 10, "bonds", "moderate")},
		{Name: "Crypto", Request: request(10000, 10, "crypto", "moderate")},
		{Name: "Stocks", Request: request(10000, 10, "stocks", "moderate")},
	})
	require.NoError(t, err)
	require.Len(t, batch.Runs, 3)

	assert.Equal(t, "Bonds", batch.Runs[0].Name)
	assert.Equal(t, "Crypto", batch.Runs[1].Name)
	assert.Equal(t, "Stocks", batch.Runs[2].Name)

	assert.Equal(t, "Crypto", batch.Recommendation.ScenarioName)
	assert.True(t, batch.Recommendation.FinalValue.Equal(batch.Runs[1].Result.Summary.FinalValue))
	assert.NotEmpty(t, batch.Runs[0].Insights.Lines)
}

func TestRunScenarios_TieKeepsEarliest(t *testing.T) {
	engine := NewProjectionEngine()
	batch, err := engine.RunScenarios(context.Background(), []domain.NamedRequest{
		{Name: "first", Request: request(10000, 5, "stocks", "moderate")},
		{Name: "second", Request: request(10000, 5, "STOCKS", "Moderate")},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", batch.Recommendation.ScenarioName)
}

func TestRunScenarios_WrapsFailingScenario(t *testing.T) {
	engine := NewProjectionEngine()
	_, err := engine.RunScenarios(context.Background(), []domain.NamedRequest{
		{Name: "ok", Request: request(10000, 5, "stocks", "moderate")},
		{Name: "broken", Request: request(10000, 5, "stocks", "reckless")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownRiskProfile))
	assert.True(t, strings.Contains(err.Error(), "scenario 1 (broken)"), err.Error())
}

func TestRunScenarios_CanceledContext(t *testing.T) {
	engine := NewProjectionEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunScenarios(ctx, []domain.NamedRequest{
		{Name: "ok", Request: request(10000, 5, "stocks", "moderate")},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_EmptyAndDegenerateRuns(t *testing.T) {
	assert.Equal(t, domain.Recommendation{}, Recommend(nil))

	engine := NewProjectionEngine()
	run, err := engine.RunScenario(domain.NamedRequest{Name: "empty", Request: request(10000, 0, "stocks", "moderate")})
	require.NoError(t, err)
	assert.Equal(t, "", Recommend([]domain.ScenarioRun{*run}).ScenarioName)
}
