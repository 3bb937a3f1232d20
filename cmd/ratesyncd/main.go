package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ratesync/internal/config"
	"ratesync/internal/engine"
	"ratesync/internal/importer"
	"ratesync/internal/publisher"
	"ratesync/internal/scheduler"
	"ratesync/internal/server"
	"ratesync/internal/source/ratesapi"
	"ratesync/internal/storage/postgres"
	"ratesync/internal/tablestore"
	"ratesync/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := migrations.Migrate(db.DB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize RabbitMQ publisher
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

	// Initialize stores
	rateStore := postgres.NewRateStore(db)
	settingsStore := postgres.NewSettingsStore(db)
	txManager := postgres.NewTransactionManager(db)

	tables, err := tablestore.New(cfg.Tables.Dir)
	if err != nil {
		logger.Error("failed to create table store", "error", err)
		os.Exit(1)
	}

	// Initialize rates API client
	fetcher := ratesapi.New(ratesapi.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	csvImporter := importer.New(rateStore, logger)

	// Create sync engine and its continuation dispatcher
	dispatcher := engine.NewDispatcher(logger)
	syncEngine := engine.New(
		settingsStore,
		fetcher,
		tables,
		csvImporter,
		rateStore,
		txManager,
		rabbitMQ,
		dispatcher,
		logger,
		engine.Config{SkipFailedRegions: cfg.Sync.SkipFailedRegions},
	)

	sched := scheduler.NewScheduler(syncEngine, cfg.Sync.Interval, logger)
	handler := server.NewHandler(syncEngine, settingsStore, rateStore, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go dispatcher.Run(ctx, syncEngine)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.Init(),
	}
	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting rate syncer",
		"interval", cfg.Sync.Interval,
		"tables_dir", cfg.Tables.Dir,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
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
