package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okorolenko/semantic-audit/internal/bootstrap"
	"github.com/okorolenko/semantic-audit/internal/config"
	"github.com/okorolenko/semantic-audit/internal/observability/logging"
	"github.com/okorolenko/semantic-audit/internal/observability/metrics"
)

const serviceName = "worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		logger.Info("worker_metrics_listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker_metrics_server_error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeAuditRequested(ctx, func(handlerCtx context.Context, auditID string) error {
		if audit, lookupErr := app.Repo.GetByID(handlerCtx, auditID); lookupErr == nil {
			workerMetrics.ObserveQueueLag(serviceName, time.Since(audit.CreatedAt))
		}

		workerMetrics.StartAudit()
		start := time.Now()

		processCtx, cancel := context.WithTimeout(handlerCtx, 10*time.Minute)
		defer cancel()
		processErr := app.ProcessUC.ProcessByID(processCtx, auditID)

		workerMetrics.FinishAudit(serviceName, time.Since(start), processErr)
		return processErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
