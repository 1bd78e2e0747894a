// cmd/search-service/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"trimly-search/internal/catalog"
	"trimly-search/internal/common/config"
	"trimly-search/internal/common/database"
	"trimly-search/internal/common/logger"
	"trimly-search/internal/common/observability"
	"trimly-search/internal/search"
	"trimly-search/internal/search/interpreter"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting search service...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("search-service")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init catalog source per configuration ---
	var source catalog.Source

	switch cfg.Search.CatalogSource {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")

		source = catalog.NewPostgresSource(pg.DB)

	case "elasticsearch":
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")

		source = catalog.NewElasticsearchSource(esClient, cfg.Database.Elasticsearch.Index)

	default:
		zapLog.Fatal("unsupported catalog source", zap.String("source", cfg.Search.CatalogSource))
	}

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	// The interpretation cache is optional: without Redis every query just
	// hits the interpreter.
	var cache search.InterpretationCache
	if err != nil {
		zapLog.Warn("redis unavailable, interpretation cache disabled", zap.Error(err))
	} else {
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
		cache = interpreter.NewCache(redis, config.GetDuration(cfg.Search.InterpretationCacheTTL), log)
	}

	// --- Load the initial catalog snapshot ---
	store := catalog.NewStore(source, log)
	err = retryWithBackoff(func() error {
		return store.Refresh(ctx)
	}, 5, 2*time.Second, zapLog, "Catalog snapshot load")

	if err != nil {
		zapLog.Fatal("catalog load failed after retries", zap.Error(err))
	}

	// --- Wire the search pipeline ---
	interp := interpreter.NewClient(interpreter.Config{
		BaseURL:    cfg.APIs.GenAI.BaseURL,
		APIKey:     cfg.APIs.GenAI.APIKey,
		Timeout:    config.GetDuration(cfg.APIs.GenAI.Timeout),
		MaxRetries: cfg.APIs.GenAI.MaxRetries,
	}, log)

	svc := search.NewService(interp, cache, log)
	handler := search.NewHTTPHandler(svc, store, log)

	// --- Periodic catalog refresh ---
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go func() {
		ticker := time.NewTicker(config.GetDuration(cfg.Search.CatalogRefreshInterval))
		defer ticker.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				// Failures keep the previous snapshot; searches are unaffected.
				if err := store.Refresh(refreshCtx); err != nil {
					log.WithError(err).Warn("catalog refresh failed", map[string]interface{}{
						"source": source.Name(),
					})
				}
			}
		}
	}()

	// --- HTTP Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", handler.Search)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status":          "healthy",
			"catalogLoadedAt": store.LoadedAt().Format(time.RFC3339),
			"time":            time.Now().Format(time.RFC3339),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	stopRefresh()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Search service stopped gracefully")
}
