package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsletter_pipeline/internal/api"
	"newsletter_pipeline/internal/config"
	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/extract"
	"newsletter_pipeline/internal/job"
	"newsletter_pipeline/internal/pipeline"
	"newsletter_pipeline/internal/publisher"
	"newsletter_pipeline/internal/resolve"
	"newsletter_pipeline/internal/scheduler"
	"newsletter_pipeline/internal/source/jsonfile"
	"newsletter_pipeline/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	txManager := postgres.NewTransactionManager(db)
	extractionStore := postgres.NewExtractionStore(db, txManager)
	filterConfigStore := postgres.NewFilterConfigStore(db)

	source := jsonfile.New(jsonfile.Config{
		Path:    cfg.Source.Path,
		Senders: cfg.Source.Senders,
	}, logger)

	pipelineService := pipeline.NewService(
		source,
		extract.New(logger),
		resolve.New(cfg.Pipeline.ResolveTimeout, logger),
		extractionStore,
		filterConfigStore,
		logger,
		cfg.Pipeline,
	)

	tracker := job.NewTracker(logger)
	runner := job.NewRunner(tracker, pipelineService, rabbitMQ, logger)

	server := api.NewServer(
		cfg.Server.Addr,
		runner,
		tracker,
		extractionStore,
		filterConfigStore,
		logger,
		cfg.Pipeline,
	)

	sched := scheduler.NewScheduler(
		pipelineService,
		domain.FetchParams{
			DaysBack:   cfg.Pipeline.ScheduledDaysBack,
			MaxResults: cfg.Pipeline.ScheduledMaxEmails,
		},
		cfg.Pipeline.ScheduleInterval,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting newsletter pipeline server",
		"addr", cfg.Server.Addr,
		"source", source.Name(),
		"schedule_interval", cfg.Pipeline.ScheduleInterval,
	)

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
