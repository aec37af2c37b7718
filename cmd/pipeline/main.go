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

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_sentiment/internal/aggregate"
	"news_sentiment/internal/analysis"
	"news_sentiment/internal/api"
	"news_sentiment/internal/cache/redis"
	"news_sentiment/internal/config"
	"news_sentiment/internal/publisher"
	"news_sentiment/internal/scheduler"
	"news_sentiment/internal/service"
	"news_sentiment/internal/source/newsdata"
	"news_sentiment/internal/storage/postgres"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	redisClient, err := redis.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	logger.Info("connected to redis")

	summaryCache := redis.NewSummaryCache(redisClient, cfg.Redis.KeyPrefix, logger)

	// Publisher is optional; a nil interface disables events.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
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
		pub = rabbitMQ
	}

	// Initialize stores
	articleStore := postgres.NewArticleStore(db)
	jobStateStore := postgres.NewJobStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := newsdata.New(newsdata.Config{
		BaseURL:        cfg.API.BaseURL,
		APIKey:         cfg.API.APIKey,
		Language:       cfg.API.Language,
		Query:          cfg.API.Query,
		Category:       cfg.API.Category,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	ingestService := service.NewIngestService(
		source,
		analysis.NewVaderScorer(),
		newClassifier(cfg.Classifier),
		articleStore,
		jobStateStore,
		aggregate.New(cfg.Pipeline.TopSources),
		summaryCache,
		pub,
		logger,
		cfg.Pipeline,
	)

	evictionService := service.NewEvictionService(
		articleStore,
		jobStateStore,
		txManager,
		cfg.Pipeline.RetentionDays,
		logger,
	)

	loc, err := cfg.Pipeline.Location()
	if err != nil {
		logger.Error("failed to load time zone", "error", err)
		os.Exit(1)
	}

	sched := scheduler.New(logger,
		scheduler.WithLocation(loc),
		scheduler.WithJobTimeout(cfg.Pipeline.CycleTimeout),
	)

	sched.Every(service.JobIngest, cfg.Pipeline.Interval, func(ctx context.Context) error {
		_, err := ingestService.RunCycle(ctx)
		return err
	})

	err = sched.Cron(service.JobEvict, cfg.Pipeline.EvictionCron, func(ctx context.Context) error {
		_, err := evictionService.Evict(ctx)
		return err
	})
	if err != nil {
		logger.Error("failed to schedule eviction", "error", err)
		os.Exit(1)
	}

	var server *http.Server
	if cfg.Server.Listen != "" {
		gin.SetMode(gin.ReleaseMode)
		handler := api.NewSummaryHandler(summaryCache, cfg.Pipeline.Windows, logger)
		server = &http.Server{
			Addr:              cfg.Server.Listen,
			Handler:           api.NewRouter(handler, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.Info("starting read api", "listen", cfg.Server.Listen)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("read api failed", "error", err)
				cancel()
			}
		}()
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting sentiment pipeline",
		"source", source.Name(),
		"interval", cfg.Pipeline.Interval,
		"eviction_cron", cfg.Pipeline.EvictionCron,
		"timezone", loc.String(),
		"windows", len(cfg.Pipeline.Windows),
	)

	err = sched.Start(ctx)

	if server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("read api shutdown", "error", err)
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func newClassifier(cfg config.ClassifierConfig) service.Classifier {
	if cfg.Backend == "openai" {
		return analysis.NewOpenAIClassifier(analysis.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.Model,
		})
	}
	return analysis.NewKeywordClassifier()
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
