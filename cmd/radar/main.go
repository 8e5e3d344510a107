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

	"launchradar/internal/api"
	"launchradar/internal/collector/reddit"
	"launchradar/internal/collector/twitter"
	"launchradar/internal/config"
	"launchradar/internal/publisher"
	"launchradar/internal/scoring"
	"launchradar/internal/service"
	"launchradar/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	autostart := flag.Bool("autostart", true, "start all collectors on boot")
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

	// Initialize stores and processor
	rawPostStore := postgres.NewRawPostStore(db)
	opportunityStore := postgres.NewOpportunityStore(db)
	txManager := postgres.NewTransactionManager(db)

	processor := service.NewProcessor(
		rawPostStore,
		opportunityStore,
		txManager,
		rabbitMQ,
		scoring.New(),
		cfg.Collection.MinimumScore,
		logger,
	)

	// Initialize collectors; a source with missing credentials is skipped
	// rather than taking the whole process down.
	var collectors []service.Collector

	if err := cfg.ValidateTwitter(); err != nil {
		logger.Warn("twitter collector disabled", "error", err)
	} else {
		twitterCollector, err := twitter.New(twitter.Config{
			BearerToken: cfg.Twitter.BearerToken,
			Keywords:    cfg.Collection.Keywords,
			MaxResults:  cfg.Collection.MaxPosts,
			Interval:    cfg.Collection.Interval,
			Timeout:     cfg.Collection.RequestTimeout,
		}, processor, logger)
		if err != nil {
			logger.Warn("twitter collector disabled", "error", err)
		} else {
			collectors = append(collectors, twitterCollector)
		}
	}

	if err := cfg.ValidateReddit(); err != nil {
		logger.Warn("reddit collector disabled", "error", err)
	} else {
		redditCollector, err := reddit.New(reddit.Config{
			ClientID:     cfg.Reddit.ClientID,
			ClientSecret: cfg.Reddit.ClientSecret,
			Username:     cfg.Reddit.Username,
			Password:     cfg.Reddit.Password,
			Subreddits:   cfg.Collection.Subreddits,
			Keywords:     cfg.Collection.Keywords,
			Interval:     cfg.Collection.Interval,
			Timeout:      cfg.Collection.RequestTimeout,
		}, processor, logger)
		if err != nil {
			logger.Warn("reddit collector disabled", "error", err)
		} else {
			collectors = append(collectors, redditCollector)
		}
	}

	if len(collectors) == 0 {
		logger.Error("no collectors configured, check credentials")
		os.Exit(1)
	}

	manager := service.NewManager(collectors, processor, logger)

	if *autostart {
		if err := manager.StartAll(); err != nil {
			logger.Warn("some collectors failed to start", "error", err)
		}
	}

	server := &http.Server{
		Addr:    cfg.API.Addr,
		Handler: api.NewServer(manager, cfg.Collection.RetentionDays, logger).Router(),
	}

	go func() {
		logger.Info("starting admin api", "addr", cfg.API.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig)

	manager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api shutdown error", "error", err)
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
