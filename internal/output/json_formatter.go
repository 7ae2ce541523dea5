package output

import (
	"encoding/json"

	"github.com/whatif/growth-simulator/internal/domain"
)

// JSONFormatter serializes the scenario batch as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(batch *domain.ScenarioBatch) ([]byte, error) {
	return json.MarshalIndent(batch, "", "  ")
}
