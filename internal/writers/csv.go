package writers

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

func init() {
	Register("csv", writeCSV)
}

// writeCSV выводит погодовую разбивку в CSV с сырыми числами -
// для импорта в таблицы, без локального форматирования
func writeCSV(w io.Writer, p Payload) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"year", "principal", "interest", "final_amount"}); err != nil {
		return err
	}

	for _, row := range p.Result.Breakdown {
		record := []string{
			strconv.Itoa(row.Year),
			formatAmount(row.Principal),
			formatAmount(row.Interest),
			formatAmount(row.FinalAmount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	summary := p.Result.Summary
	if err := cw.Write([]string{
		"total",
		formatAmount(summary.TotalPrincipal),
		formatAmount(summary.TotalInterest),
		formatAmount(summary.FinalAmount),
	}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(utils.Round2(value), 'f', -1, 64)
}
