package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// RequestFile is the on-disk shape of a batch of What-If runs.
type RequestFile struct {
	Defaults  domain.SimulationRequest `yaml:"defaults"`
	Scenarios []domain.NamedRequest    `yaml:"scenarios"`
}

// Resolved returns the scenarios with defaults applied, in file order.
func (rf *RequestFile) Resolved() []domain.NamedRequest {
	out := make([]domain.NamedRequest, 0, len(rf.Scenarios))
	for _, sc := range rf.Scenarios {
		out = append(out, domain.NamedRequest{
			Name:    sc.Name,
			Request: sc.Request.WithDefaults(rf.Defaults),
		})
	}
	return out
}

// InputParser handles parsing of request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request file from YAML (JSON is accepted as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*RequestFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates request file contents
func (ip *InputParser) Parse(data []byte) (*RequestFile, error) {
	var rf RequestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequestFile(&rf); err != nil {
		return nil, fmt.Errorf("request file validation failed: %w", err)
	}

	return &rf, nil
}

// ValidateRequestFile validates every scenario after defaults are applied
func (ip *InputParser) ValidateRequestFile(rf *RequestFile) error {
	if len(rf.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidRequest)
	}

	seen := make(map[string]int, len(rf.Scenarios))
	for i, sc := range rf.Resolved() {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: %w: name is required", i, domain.ErrInvalidRequest)
		}
		if prev, dup := seen[sc.Name]; dup {
			return fmt.Errorf("scenario %d: %w: name %q already used by scenario %d", i, domain.ErrInvalidRequest, sc.Name, prev)
		}
		seen[sc.Name] = i

		if err := sc.Request.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, sc.Name, err)
		}
	}

	return nil
}

// SaveRequestFile writes a request file as YAML
func SaveRequestFile(rf *RequestFile, filename string) error {
	b, err := yaml.Marshal(rf)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleRequestFile creates an example request file comparing a few asset classes
func (ip *InputParser) CreateExampleRequestFile() *RequestFile {
	return &RequestFile{
		Defaults: domain.SimulationRequest{
			Principal:     decimal.NewFromInt(10000),
			Years:         5,
			AssetClassID:  "stocks",
			RiskProfileID: "moderate",
		},
		Scenarios: []domain.NamedRequest{
			{Name: "Stocks moderate"},
			{Name: "Bonds conservative", Request: domain.SimulationRequest{AssetClassID: "bonds", RiskProfileID: "conservative"}},
			{Name: "Real estate long horizon", Request: domain.SimulationRequest{AssetClassID: "realestate", Years: 20}},
			{Name: "Crypto aggressive", Request: domain.SimulationRequest{AssetClassID: "crypto", RiskProfileID: "aggressive", Principal: decimal.NewFromInt(2500)}},
		},
	}
}
