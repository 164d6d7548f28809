package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/config"
	dbRedis "github.com/kailas-cloud/dirsearch/internal/db/redis"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
	logpkg "github.com/kailas-cloud/dirsearch/internal/logger"
	"github.com/kailas-cloud/dirsearch/internal/metrics"
	snapshotrepo "github.com/kailas-cloud/dirsearch/internal/repository/snapshot"
	chiTransport "github.com/kailas-cloud/dirsearch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	resolveuc "github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
	"github.com/kailas-cloud/dirsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dirsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Bool("fold_monospace", cfg.Search.FoldMonospace),
	)

	// Redis and Valkey share the rueidis store; the client cache is on only when a TTL is set.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:        cfg.Database.Addrs,
		Username:     cfg.Database.Username,
		Password:     cfg.Database.Password,
		DB:           cfg.Database.DB,
		DisableCache: cfg.Database.CacheTTLSec == 0,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterSearchMetrics()

	table := text.DefaultTable()
	if cfg.Search.FoldMonospace {
		table = text.MonospaceTable()
	}

	snapshots := snapshotrepo.New(store, cfg.Storage.KeyPrefix, cfg.Database.CacheTTL())

	searchSvc := searchuc.New(snapshots, text.NewNormalizer(table))
	resolveSvc := resolveuc.New(snapshots, resolveuc.NewResolver())
	healthSvc := healthuc.New(store, snapshots)

	if err := snapshots.Exists(ctx); err != nil {
		logger.Warn("Snapshots not loaded yet; searches fail until dirsearchctl load runs", zap.Error(err))
	}

	server := chiTransport.NewServer(searchSvc, resolveSvc, healthSvc, cfg.Search.Bounds(), logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	chiTransport.HandlerWithOptions(server, chiTransport.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.BadRequestHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
