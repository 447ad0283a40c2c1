package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationRequests счетчик запросов на расчет
	CalculationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_requests_total",
			Help: "Общее количество запросов на расчет",
		},
		[]string{"operation", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок при обработке запросов на расчет",
		},
		[]string{"operation", "error_type"},
	)

	// ReportExports счетчик выгрузок отчетов
	ReportExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_exports_total",
			Help: "Количество выгрузок отчетов по форматам",
		},
		[]string{"format", "status"},
	)
)
