package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/whatif/growth-simulator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with a chart of each scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"add":  func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioBatch
		Assumptions []string
	}{batch, GenerateAssumptions()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
