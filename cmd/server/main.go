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

	"github.com/waljunye/redsync/internal/auth"
	"github.com/waljunye/redsync/internal/config"
	"github.com/waljunye/redsync/internal/publisher"
	"github.com/waljunye/redsync/internal/reddit"
	"github.com/waljunye/redsync/internal/service"
	"github.com/waljunye/redsync/internal/storage/postgres"
	"github.com/waljunye/redsync/internal/transport/rest"
)

// redditSessions adapts the reddit client to the service's factory interface.
type redditSessions struct {
	client *reddit.Client
}

func (f redditSessions) Session(accessToken string) service.Session {
	return f.client.Session(accessToken)
}

// pgStore adapts the postgres pool to the service's store interface.
type pgStore struct {
	pool *postgres.Pool
}

func (s pgStore) Acquire(ctx context.Context) (service.StoreConn, error) {
	return s.pool.Acquire(ctx)
}

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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	pool := postgres.NewPool(db)
	defer pool.Close()

	// Event publishing is optional; syncs run fine without a broker.
	var events service.Publisher
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
		events = rabbitMQ
	}

	redditClient := reddit.New(reddit.Config{
		BaseURL:        cfg.Reddit.BaseURL,
		UserAgent:      cfg.Reddit.UserAgent,
		PageSize:       cfg.Reddit.PageSize,
		Timeout:        cfg.Reddit.Timeout,
		MaxAttempts:    cfg.Reddit.Retry.MaxAttempts,
		InitialBackoff: cfg.Reddit.Retry.InitialBackoff,
		MaxBackoff:     cfg.Reddit.Retry.MaxBackoff,
	}, logger)

	authorizer := auth.New(cfg.OAuth)

	syncService := service.NewSyncService(
		redditSessions{client: redditClient},
		pgStore{pool: pool},
		events,
		logger,
	)

	handler := rest.NewHandler(syncService, authorizer, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Server.Addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
