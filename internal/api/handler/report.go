package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/forminput"
	"github.com/cloud-ru/savings-calc-go/internal/metrics"
	"github.com/cloud-ru/savings-calc-go/internal/render"
	"github.com/cloud-ru/savings-calc-go/internal/report"
	"github.com/cloud-ru/savings-calc-go/internal/validators"
)

// Report обрабатывает запрос на выгрузку PDF-отчета по расчету
func Report(cfg *config.Config, tracer trace.Tracer, money *render.Money) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operation := "report"

		_, span := tracer.Start(r.Context(), "savings_report")
		defer span.End()

		metrics.CalculationRequests.WithLabelValues(operation, "started").Inc()

		raw, err := decodeRawInput(r)
		if err != nil {
			span.SetAttributes(attribute.String("error", "decode_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "decode").Inc()
			metrics.ReportExports.WithLabelValues("pdf", "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in := forminput.Normalize(raw)

		if err := validators.CheckAccrualInput(cfg, in); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "validation").Inc()
			metrics.ReportExports.WithLabelValues("pdf", "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := calculations.AccrualSchedule(in)
		growth := calculations.AccrualGrowthMetrics(in, result)

		data, err := report.BuildPDF(in, result, growth, money)
		if err != nil {
			span.SetAttributes(attribute.String("error", "export_error"))
			metrics.ReportExports.WithLabelValues("pdf", "error").Inc()
			logrus.WithError(err).Error("ошибка сборки PDF-отчета")
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("report_bytes", len(data)),
		)
		metrics.ReportExports.WithLabelValues("pdf", "success").Inc()
		metrics.CalculationRequests.WithLabelValues(operation, "success").Inc()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="savings-report.pdf"`)
		if _, err := w.Write(data); err != nil {
			logrus.WithError(err).Warn("ошибка записи PDF-ответа")
		}
	})
}
