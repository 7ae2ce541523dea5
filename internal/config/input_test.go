package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatif/growth-simulator/internal/domain"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "defaults:\n" +
		"  principal: 10000\n" +
		"  years: 5\n" +
		"  asset_class: stocks\n" +
		"  risk_profile: moderate\n" +
		"scenarios:\n" +
		"  - name: \"Stocks moderate\"\n" +
		"  - name: \"Bonds conservative\"\n" +
		"    asset_class: bonds\n" +
		"    risk_profile: conservative\n" +
		"    principal: \"5000\"\n" +
		"    years: 1\n"

	parser := NewInputParser()
	rf, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)
	require.Len(t, rf.Scenarios, 2)

	resolved := rf.Resolved()
	assert.Equal(t, "Stocks moderate", resolved[0].Name)
	assert.True(t, resolved[0].Request.Principal.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 5, resolved[0].Request.Years)
	assert.Equal(t, "stocks", resolved[0].Request.AssetClassID)
	assert.Equal(t, "moderate", resolved[0].Request.RiskProfileID)

	assert.Equal(t, "Bonds conservative", resolved[1].Name)
	assert.True(t, resolved[1].Request.Principal.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, 1, resolved[1].Request.Years)
	assert.Equal(t, "bonds", resolved[1].Request.AssetClassID)
	assert.Equal(t, "conservative", resolved[1].Request.RiskProfileID)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	rf, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, rf)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
defaults:
	principal: 100
	years: "five"
`
	parser := NewInputParser()
	rf, err := parser.LoadFromFile(writeTemp(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, rf)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_JSONInput(t *testing.T) {
	parser := NewInputParser()
	rf, err := parser.Parse([]byte(`{"scenarios":[{"name":"a","principal":100,"years":3,"asset_class":"crypto","risk_profile":"aggressive"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "crypto", rf.Resolved()[0].Request.AssetClassID)
}

func TestValidateRequestFile(t *testing.T) {
	defaults := domain.SimulationRequest{
		Principal:     decimal.NewFromInt(1000),
		Years:         10,
		AssetClassID:  "stocks",
		RiskProfileID: "moderate",
	}

	testCases := []struct {
		desc      string
		scenarios []domain.NamedRequest
		wantErr   error
		contains  string
	}{
		{
			desc:      "no scenarios",
			scenarios: nil,
			wantErr:   domain.ErrInvalidRequest,
			contains:  "no scenarios provided",
		},
		{
			desc:      "missing name",
			scenarios: []domain.NamedRequest{{Name: ""}},
			wantErr:   domain.ErrInvalidRequest,
			contains:  "scenario 0",
		},
		{
			desc:      "duplicate name",
			scenarios: []domain.NamedRequest{{Name: "a"}, {Name: "a"}},
			wantErr:   domain.ErrInvalidRequest,
			contains:  "already used by scenario 0",
		},
		{
			desc:      "years out of range",
			scenarios: []domain.NamedRequest{{Name: "a", Request: domain.SimulationRequest{Years: 31}}},
			wantErr:   domain.ErrInvalidRequest,
			contains:  "scenario 0 (a)",
		},
		{
			desc:      "negative principal",
			scenarios: []domain.NamedRequest{{Name: "a", Request: domain.SimulationRequest{Principal: decimal.NewFromInt(-1)}}},
			wantErr:   domain.ErrInvalidRequest,
		},
		{
			desc:      "unknown asset class",
			scenarios: []domain.NamedRequest{{Name: "ok"}, {Name: "b", Request: domain.SimulationRequest{AssetClassID: "gold"}}},
			wantErr:   domain.ErrUnknownAssetClass,
			contains:  "scenario 1 (b)",
		},
		{
			desc:      "unknown risk profile",
			scenarios: []domain.NamedRequest{{Name: "a", Request: domain.SimulationRequest{RiskProfileID: "wild"}}},
			wantErr:   domain.ErrUnknownRiskProfile,
		},
		{
			desc:      "valid",
			scenarios: []domain.NamedRequest{{Name: "a"}, {Name: "b", Request: domain.SimulationRequest{AssetClassID: "bonds"}}},
		},
	}

	parser := NewInputParser()
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := parser.ValidateRequestFile(&RequestFile{Defaults: defaults, Scenarios: tc.scenarios})
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestExampleRequestFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleRequestFile()
	require.NoError(t, parser.ValidateRequestFile(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, SaveRequestFile(example, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, len(example.Scenarios))

	want := example.Resolved()
	got := loaded.Resolved()
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].Request.Principal.Equal(got[i].Request.Principal), want[i].Name)
		assert.Equal(t, want[i].Request.Years, got[i].Request.Years)
		assert.Equal(t, want[i].Request.AssetClassID, got[i].Request.AssetClassID)
		assert.Equal(t, want[i].Request.RiskProfileID, got[i].Request.RiskProfileID)
	}
}
