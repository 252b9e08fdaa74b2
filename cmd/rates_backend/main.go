package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pbialczyk/nbp_rates_app/internal/adapters/ratesapi/nbp"
	"github.com/pbialczyk/nbp_rates_app/internal/adapters/storage/csvfile"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/core/services"
	"github.com/pbialczyk/nbp_rates_app/internal/handlers"
	"github.com/pbialczyk/nbp_rates_app/internal/middleware"
	"github.com/pbialczyk/nbp_rates_app/internal/platform/config"
)

// @title NBP Rates Backend API
// @version 1.0
// @description Fetches NBP mid exchange rates on a schedule and serves query, analysis and export endpoints over the persisted rate table.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Root context: cancelled on shutdown so the fetch scheduler and every
	// in-flight request wind down before the process exits.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	store := csvfile.NewStore(cfg.AllCurrencyCSVPath)
	source := nbp.New(
		nbp.WithBaseURL(cfg.NBPAPIBaseURL),
		nbp.WithTableType(cfg.NBPTableType),
	)

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		RateTableRepo: store,
		RateSource:    source,
	})

	// Fetch-and-save scheduler: one cycle at startup, then one per interval.
	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		runFetchCycles(rootCtx, logger, container.RateSync, cfg.FetchInterval)
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return rootCtx
		},
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	<-done

	// Stop the scheduler first so no save cycle starts mid-shutdown.
	rootCancel()
	<-schedulerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// runFetchCycles runs one fetch-and-save cycle immediately, then one per
// interval until ctx is cancelled. A failed cycle is logged and the next tick
// still fires; nothing on this path stops the process.
func runFetchCycles(ctx context.Context, logger *slog.Logger, syncSvc portssvc.RateSyncSvcFacade, interval time.Duration) {
	logger.Info("Starting currency data fetching job", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := syncSvc.RunCycle(ctx); err != nil {
			logger.Error("Fetch cycle failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			logger.Info("Stopping currency data fetching job")
			return
		case <-ticker.C:
		}
	}
}
