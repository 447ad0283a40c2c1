package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/savings-calc-go/internal/api"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/tracing"
)

func main() {
	configureLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("неизвестный уровень логов %q, используется info", cfg.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	var tracer trace.Tracer
	if err := tracing.InitTracing(cfg.OTELServiceName, cfg.OTELEndpoint); err != nil {
		logrus.WithError(err).Warn("трейсинг не инициализирован")
		tracer = otel.Tracer(cfg.OTELServiceName)
	} else {
		tracer = tracing.Tracer
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := api.New(cfg, tracer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
