package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/async"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/common"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/export"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/ingest"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/llm"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/llm/openai"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/pipeline"
	repo "github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewScanJobRepository(pool, logger)
	ticketsRepo := repo.NewTicketRepository(pool, logger)

	var visionClient llm.FieldExtractor
	if !cfg.Vision.Disabled {
		visionClient = openai.NewClient(openai.Config{
			Model:           cfg.Vision.Model,
			APIKey:          cfg.Vision.APIKey,
			Temperature:     cfg.Vision.Temperature,
			Timeout:         cfg.Vision.Timeout,
			LenientOptional: true,
		}, logger)
	}

	parseStage := pipeline.NewParseStage(logger, pipeline.Config{
		MinConfidence: 0.60,
		ModelName:     cfg.Vision.Model,
	}, jobsRepo, ticketsRepo, visionClient)

	queue := async.NewParseQueue(parseStage, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueDepth),
		async.WithProcessTimeout(3*time.Minute),
	)

	// Directory watcher, when configured, feeds dropped transcripts into the
	// same queue the API uses.
	if cfg.Ingest.WatchDir != "" {
		ingestor := ingest.NewIngestor(jobsRepo, queue, logger)
		go func() {
			err := ingestor.WatchLoop(ctx, ingest.WatchConfig{
				Roots:       []string{cfg.Ingest.WatchDir},
				InitialScan: true,
				Debounce:    500 * time.Millisecond,
			})
			if err != nil && ctx.Err() == nil {
				logger.Error("watch loop exited", "error", err)
			}
		}()
	}

	exporter := export.NewService(ticketsRepo, logger)
	api := server.New(logger, jobsRepo, ticketsRepo, queue, exporter, pool)

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("ticketsd listening", "addr", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}
