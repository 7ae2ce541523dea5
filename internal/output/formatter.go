package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/whatif/growth-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(batch *domain.ScenarioBatch) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Ext is the file extension used when the output is written to disk.
	Ext() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, batch *domain.ScenarioBatch, dir string) (string, error) {
	data, err := f.Format(batch)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	filename := filepath.Join(dir, fmt.Sprintf("whatif_report_%s.%s", time.Now().Format("20060102_150405"), f.Ext()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSeriesExporter{},
	CSVSummarizer{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter by canonical name or alias.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":            "console",
	"txt":             "console",
	"lite":            "console-lite",
	"verbose":         "console",
	"console-verbose": "console",
	"csv-series":      "csv",
	"csv-summary":     "summary-csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render formats a batch with the named formatter.
func Render(batch *domain.ScenarioBatch, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(batch)
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
