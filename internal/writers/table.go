package writers

import (
	"fmt"
	"io"
)

func init() {
	Register("table", writeTable)
}

// writeTable выводит погодовую таблицу и сводку в терминал
func writeTable(w io.Writer, p Payload) error {
	money := p.Money

	if _, err := fmt.Fprintf(w, "%-6s %20s %20s %20s\n", "Year", "Principal", "Interest", "Balance"); err != nil {
		return err
	}

	for _, row := range p.Result.Breakdown {
		_, err := fmt.Fprintf(w, "%-6d %20s %20s %20s\n",
			row.Year,
			money.Format(row.Principal),
			money.Format(row.Interest),
			money.Format(row.FinalAmount),
		)
		if err != nil {
			return err
		}
	}

	summary := p.Result.Summary
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total principal: %s\n", money.Format(summary.TotalPrincipal)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total interest:  %s\n", money.Format(summary.TotalInterest)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Final amount:    %s\n", money.Format(summary.FinalAmount)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "ROI: %.2f%%, annualized: %.2f%% over %.2f years\n",
		p.Metrics.ROIPercent, p.Metrics.AnnualizedReturnPercent, p.Metrics.Years)
	return err
}
