package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/savings-calc-go/internal/api/handler"
	"github.com/cloud-ru/savings-calc-go/internal/api/handler/router"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/internal/render"
	"github.com/cloud-ru/savings-calc-go/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, tracer trace.Tracer) (*Server, error) {
	money := render.NewMoney(cfg.Locale, cfg.CurrencySymbol)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Savings(cfg, tracer, money)...),
	)

	middlewares := []alice.Constructor{
		middleware.RecoverMiddleware(),
		middleware.LoggingMiddleware(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("сервер запускается")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("ошибка при работе сервера")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("получен сигнал остановки")
	case <-ctx.Done():
		logrus.Info("контекст приложения отменен")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("ошибка при остановке сервера")
		return err
	}

	logrus.Info("сервер остановлен")
	return nil
}
