package handler

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/forminput"
	"github.com/cloud-ru/savings-calc-go/internal/metrics"
	"github.com/cloud-ru/savings-calc-go/internal/validators"
)

// CalculateResponse представляет ответ на запрос расчета накоплений
type CalculateResponse struct {
	Input         calculations.AccrualInput   `json:"input"`
	Summary       calculations.AccrualSummary `json:"summary"`
	Breakdown     []calculations.YearRow      `json:"breakdown"`
	GrowthMetrics calculations.GrowthMetrics  `json:"growth_metrics"`
}

// Calculate обрабатывает запрос на расчет накоплений
func Calculate(cfg *config.Config, tracer trace.Tracer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operation := "calculate"

		_, span := tracer.Start(r.Context(), "savings_calculate")
		defer span.End()

		metrics.CalculationRequests.WithLabelValues(operation, "started").Inc()

		raw, err := decodeRawInput(r)
		if err != nil {
			span.SetAttributes(attribute.String("error", "decode_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "decode").Inc()
			metrics.CalculationRequests.WithLabelValues(operation, "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in := forminput.Normalize(raw)

		span.SetAttributes(
			attribute.Float64("initial_amount", in.InitialAmount),
			attribute.Float64("monthly_contribution", in.MonthlyContribution),
			attribute.Int("period", in.Period),
			attribute.String("period_unit", string(in.PeriodUnit)),
			attribute.Float64("rate", in.Rate),
			attribute.String("rate_unit", string(in.RateUnit)),
		)

		// Валидация границ на уровне API, само ядро расчета тотально
		if err := validators.CheckAccrualInput(cfg, in); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "validation").Inc()
			metrics.CalculationRequests.WithLabelValues(operation, "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := calculations.AccrualSchedule(in)
		growth := calculations.AccrualGrowthMetrics(in, result)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("final_amount", result.Summary.FinalAmount),
			attribute.Int("breakdown_years", len(result.Breakdown)),
		)
		metrics.CalculationRequests.WithLabelValues(operation, "success").Inc()

		respondJSON(w, http.StatusOK, CalculateResponse{
			Input:         in,
			Summary:       result.Summary,
			Breakdown:     result.Breakdown,
			GrowthMetrics: growth,
		})
	})
}

// Compare обрабатывает запрос на сравнение накоплений с взносами и без
func Compare(cfg *config.Config, tracer trace.Tracer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operation := "compare"

		_, span := tracer.Start(r.Context(), "savings_compare")
		defer span.End()

		metrics.CalculationRequests.WithLabelValues(operation, "started").Inc()

		raw, err := decodeRawInput(r)
		if err != nil {
			span.SetAttributes(attribute.String("error", "decode_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "decode").Inc()
			metrics.CalculationRequests.WithLabelValues(operation, "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in := forminput.Normalize(raw)

		span.SetAttributes(
			attribute.Float64("initial_amount", in.InitialAmount),
			attribute.Float64("monthly_contribution", in.MonthlyContribution),
			attribute.Int("period", in.Period),
		)

		if err := validators.CheckAccrualInput(cfg, in); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.CalculationErrors.WithLabelValues(operation, "validation").Inc()
			metrics.CalculationRequests.WithLabelValues(operation, "error").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := calculations.CompareContribution(in)

		span.SetAttributes(attribute.Bool("success", true))
		metrics.CalculationRequests.WithLabelValues(operation, "success").Inc()

		respondJSON(w, http.StatusOK, result)
	})
}
