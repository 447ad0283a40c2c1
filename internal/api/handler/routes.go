package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/savings-calc-go/internal/api/handler/router"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/render"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Savings возвращает маршруты калькулятора накоплений
func Savings(cfg *config.Config, tracer trace.Tracer, money *render.Money) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/savings/calculate",
			Method:  http.MethodPost,
			Handler: Calculate(cfg, tracer),
		},
		{
			Path:    "/v1/savings/compare",
			Method:  http.MethodPost,
			Handler: Compare(cfg, tracer),
		},
		{
			Path:    "/v1/savings/report",
			Method:  http.MethodPost,
			Handler: Report(cfg, tracer, money),
		},
	}
}
