package writers

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	Register("json", writeJSON)
}

type jsonPayload struct {
	Input         calculations.AccrualInput   `json:"input"`
	Summary       calculations.AccrualSummary `json:"summary"`
	Breakdown     []calculations.YearRow      `json:"breakdown"`
	GrowthMetrics calculations.GrowthMetrics  `json:"growth_metrics"`
}

// writeJSON выводит результат расчета одним JSON-документом
func writeJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonPayload{
		Input:         p.Input,
		Summary:       p.Result.Summary,
		Breakdown:     p.Result.Breakdown,
		GrowthMetrics: p.Metrics,
	})
}
