package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/render"
)

// Аналог выгрузки снимка таблицы в исходном калькуляторе.
// Стандартные PDF-шрифты ограничены Latin-1, поэтому суммы выводятся
// без символа валюты (Plain), только с группировкой разрядов.

// BuildPDF собирает PDF-отчет: параметры расчета, погодовая таблица, сводка
func BuildPDF(in calculations.AccrualInput, result *calculations.AccrualResult,
	metrics calculations.GrowthMetrics, money *render.Money) ([]byte, error) {

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Compound Savings Forecast", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Initial amount: %s", money.Plain(in.InitialAmount)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Monthly contribution: %s (from month 2)", money.Plain(in.MonthlyContribution)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %d %s", in.Period, in.PeriodUnit), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Rate: %.2f%% %s (effective annual %.2f%%)", in.Rate, in.RateUnit, in.AnnualRate()*100), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Шапка таблицы
	colWidths := []float64{20, 56, 56, 56}
	headers := []string{"Year", "Principal", "Interest", "Balance"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range result.Breakdown {
		pdf.CellFormat(colWidths[0], 6, fmt.Sprintf("%d", row.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, money.Plain(row.Principal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, money.Plain(row.Interest), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, money.Plain(row.FinalAmount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	summary := result.Summary
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total principal: %s", money.Plain(summary.TotalPrincipal)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Total interest: %s", money.Plain(summary.TotalInterest)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Final amount: %s", money.Plain(summary.FinalAmount)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.Ln(2)
	pdf.CellFormat(0, 5, fmt.Sprintf("ROI %.2f%%, annualized %.2f%% over %.2f years", metrics.ROIPercent, metrics.AnnualizedReturnPercent, metrics.Years), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering pdf report")
	}
	return buf.Bytes(), nil
}
