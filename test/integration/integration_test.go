package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatif/growth-simulator/internal/calculation"
	"github.com/whatif/growth-simulator/internal/config"
	"github.com/whatif/growth-simulator/internal/domain"
	"github.com/whatif/growth-simulator/internal/output"
)

func loadBatch(t *testing.T) *domain.ScenarioBatch {
	t.Helper()
	parser := config.NewInputParser()
	rf, err := parser.LoadFromFile("../testdata/scenarios.yaml")
	require.NoError(t, err)

	engine := calculation.NewProjectionEngine()
	batch, err := engine.RunScenarios(context.Background(), rf.Resolved())
	require.NoError(t, err)
	return batch
}

func TestBasicCalculations(t *testing.T) {
	batch := loadBatch(t)
	require.Len(t, batch.Runs, 4)

	stocks := batch.Runs[0]
	assert.Equal(t, "Stocks moderate", stocks.Name)
	assert.True(t, stocks.Result.Summary.FinalValue.Equal(decimal.NewFromInt(17623)))

	for _, run := range batch.Runs {
		require.Len(t, run.Result.Series, run.Request.Years+1, run.Name)
		assert.True(t, run.Result.Series[0].Optimistic.Equal(run.Request.Principal), run.Name)
		for _, p := range run.Result.Series {
			assert.True(t, p.Conservative.LessThanOrEqual(p.Expected), run.Name)
			assert.True(t, p.Expected.LessThanOrEqual(p.Optimistic), run.Name)
		}
		assert.True(t, run.Result.Summary.TotalReturn.IsPositive(), run.Name)
		assert.Len(t, run.Insights.Lines, 4, run.Name)
	}

	assert.Equal(t, "Real estate long horizon", batch.Recommendation.ScenarioName)
}

func TestOutputGeneration(t *testing.T) {
	batch := loadBatch(t)
	dir := t.TempDir()

	for _, format := range []string{"console", "console-lite", "json", "csv", "summary-csv", "html"} {
		path, err := output.GenerateReport(batch, format, dir)
		require.NoError(t, err, format)

		info, err := os.Stat(path)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
		assert.Equal(t, dir, filepath.Dir(path))
	}
}

func TestSaveBatch_WritesFile(t *testing.T) {
	batch := loadBatch(t)
	out := filepath.Join(t.TempDir(), "results.yaml")
	require.NoError(t, output.SaveBatch(batch, out))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}
