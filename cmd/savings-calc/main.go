package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/forminput"
	"github.com/cloud-ru/savings-calc-go/internal/render"
	"github.com/cloud-ru/savings-calc-go/internal/report"
	"github.com/cloud-ru/savings-calc-go/internal/scenario"
	"github.com/cloud-ru/savings-calc-go/internal/validators"
	"github.com/cloud-ru/savings-calc-go/internal/writers"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("savings-calc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Значения флагов - сырой текст формы, нормализация общая с сервером
	initial := fs.String("initial", "", "starting lump sum")
	monthly := fs.String("monthly", "", "monthly contribution (from month 2)")
	period := fs.String("period", "", "accrual period")
	periodUnit := fs.String("period-unit", "years", "period unit: years or months")
	rate := fs.String("rate", "", "interest rate, percent")
	rateUnit := fs.String("rate-unit", "annual", "rate unit: annual or monthly")
	scenarioPath := fs.String("scenario", "", "YAML scenario file (overrides input flags)")
	format := fs.String("format", "", "output format: "+strings.Join(writers.Formats(), ", "))
	pdfPath := fs.String("pdf", "", "write a PDF report to this path")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	raw := forminput.RawInput{
		InitialAmount:       *initial,
		MonthlyContribution: *monthly,
		Period:              *period,
		PeriodUnit:          *periodUnit,
		Rate:                *rate,
		RateUnit:            *rateUnit,
	}

	if *scenarioPath != "" {
		sc, err := scenario.Load(*scenarioPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		raw = sc.Input
		if *format == "" {
			*format = sc.Format
		}
		if *pdfPath == "" {
			*pdfPath = sc.PDF
		}
	}
	if *format == "" {
		*format = "table"
	}

	in := forminput.Normalize(raw)

	if err := validators.CheckAccrualInput(cfg, in); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	result := calculations.AccrualSchedule(in)
	money := render.NewMoney(cfg.Locale, cfg.CurrencySymbol)

	payload := writers.Payload{
		Input:   in,
		Result:  result,
		Metrics: calculations.AccrualGrowthMetrics(in, result),
		Money:   money,
	}

	if err := writers.Write(*format, stdout, payload); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *pdfPath != "" {
		data, err := report.BuildPDF(in, result, payload.Metrics, money)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if err := os.WriteFile(*pdfPath, data, 0o644); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stderr, "PDF report written to %s\n", *pdfPath)
	}

	return 0
}
