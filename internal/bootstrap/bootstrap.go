package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/okorolenko/semantic-audit/internal/config"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
	"github.com/okorolenko/semantic-audit/internal/core/usecase"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/crawler"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/extractor"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/llm/ollama"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/queue/nats"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/repository/postgres"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/resilience"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue     ports.MessageQueue
	Repo      ports.AuditRepository
	AnalyzeUC ports.Analyzer
	SubmitUC  ports.AuditSubmitter
	ProcessUC ports.AuditProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewAuditRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig(), logger)

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	catalog := lexicon.Default()
	if cfg.LexiconPath != "" {
		catalog, err = lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon %s: %w", cfg.LexiconPath, err)
		}
	}

	var checker ports.ConsistencyChecker
	if cfg.ConsistencyCheckEnabled {
		checker = ollama.NewChecker(ollama.New(cfg.OllamaURL, cfg.OllamaModel), executor)
	}

	siteCrawler := crawler.New(crawler.Options{
		RequestTimeout: time.Duration(cfg.CrawlTimeoutSeconds) * time.Second,
		RequestsPerSec: cfg.CrawlRequestsPerSec,
		MaxPages:       cfg.CrawlMaxPages,
		Logger:         logger,
	})
	resolver := extractor.NewResolver(storage, siteCrawler)

	analyzeUC := usecase.NewAnalyzeUseCase(catalog, checker, logger, usecase.AnalyzeConfig{
		CheckConcurrency: cfg.ConsistencyCheckConcurrency,
	})
	submitUC := usecase.NewSubmitAuditUseCase(repo, storage, queue)
	processUC := usecase.NewProcessAuditUseCase(repo, resolver, analyzeUC)

	return &App{
		Config: cfg,
		Logger: logger,

		Queue: queue,
		Repo:  repo,

		AnalyzeUC: analyzeUC,
		SubmitUC:  submitUC,
		ProcessUC: processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
