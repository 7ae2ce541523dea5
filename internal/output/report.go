package output

import (
	"os"

	"github.com/whatif/growth-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the batch in the named format to a timestamped file in
// dir and returns its path. "all" writes the console, series CSV and HTML
// reports together and returns the last path written.
func GenerateReport(batch *domain.ScenarioBatch, format, dir string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var last string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVSeriesExporter{}, HTMLFormatter{}} {
			path, err := WriteFormatted(f, batch, dir)
			if err != nil {
				return "", err
			}
			last = path
		}
		return last, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return "", unsupported(format)
	}
	return WriteFormatted(f, batch, dir)
}

// SaveBatch writes an evaluated batch as YAML, for archiving a run next to its request file.
func SaveBatch(batch *domain.ScenarioBatch, filename string) error {
	b, err := yaml.Marshal(batch)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
