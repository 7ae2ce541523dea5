package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/calculation"
)

func TestFormatMatrix(t *testing.T) {
	m, err := calculation.NewProjectionEngine().ProjectMatrix(decimal.NewFromInt(10000), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := FormatMatrix(m, "console")
	if err != nil {
		t.Fatalf("console error: %v", err)
	}
	content := string(out)
	if !strings.HasPrefix(content, "SCENARIO MATRIX: $10,000.00 over 5 years") {
		t.Fatalf("unexpected heading: %s", firstLine(content))
	}
	if !strings.Contains(content, "Best:  crypto / aggressive") || !strings.Contains(content, "Worst: bonds / conservative") {
		t.Fatalf("expected best and worst lines, got: %s", content)
	}

	out, err = FormatMatrix(m, "csv")
	if err != nil {
		t.Fatalf("csv error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header + 12 cells, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[2], "stocks,moderate,10.00,17623,7623,76.23,12.00") {
		t.Fatalf("unexpected stocks/moderate row: %s", lines[2])
	}

	out, err = FormatMatrix(m, "json")
	if err != nil || !strings.HasPrefix(string(out), "{") {
		t.Fatalf("json error: %v", err)
	}

	if _, err := FormatMatrix(m, "html"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
