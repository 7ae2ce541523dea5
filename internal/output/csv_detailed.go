package output

import (
	"bytes"
	"encoding/csv"

	"github.com/whatif/growth-simulator/internal/domain"
)

// CSVSeriesExporter writes the full projection, one row per scenario and year,
// ready for charting tools.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "csv" }
func (c CSVSeriesExporter) Ext() string  { return "csv" }

func (c CSVSeriesExporter) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Conservative", "Expected", "Optimistic"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, run := range batch.Runs {
		for _, p := range run.Result.Series {
			row := []string{
				run.Name,
				intToString(p.Year),
				p.Conservative.StringFixed(0),
				p.Expected.StringFixed(0),
				p.Optimistic.StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
