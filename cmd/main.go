package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nalin-pixel/cliqo-receptionist/internal/ai"
	"github.com/nalin-pixel/cliqo-receptionist/internal/api/router"
	"github.com/nalin-pixel/cliqo-receptionist/internal/config"
	"github.com/nalin-pixel/cliqo-receptionist/internal/demo"
	"github.com/nalin-pixel/cliqo-receptionist/internal/docstore"
	"github.com/nalin-pixel/cliqo-receptionist/internal/health"
	"github.com/nalin-pixel/cliqo-receptionist/internal/observability/metrics"
	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// --- Store ---
	// The demo keeps answering without a database, so open failures only
	// downgrade to the in-memory store.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	store, err := docstore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		logger.Warn("document store not ready", "error", err)
	}
	var fallbackErr error
	if store == nil {
		fallbackErr = err
		store = docstore.NewMemory()
	}
	logger.Info("document store selected", "store", store.Name())

	// --- Demo module wiring ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	demoMetrics := metrics.NewDemoMetrics(reg)

	recorder := demo.NewRecorder(store, cfg.StoreTimeout, demoMetrics, logger)
	demoService := demo.NewService(recorder, ai.NewScripted(), demoMetrics, logger)
	demoHandler := demo.NewHandler(demoService, logger)

	healthHandler := health.NewHandler(store, health.Env{
		DatabaseURL:  cfg.DatabaseURL != "",
		DatabaseName: cfg.DatabaseName != "",
		OpenErr:      fallbackErr,
	}, logger)

	// --- Router ---
	r := router.New(&router.Config{
		Logger:             logger,
		DemoHandler:        demoHandler,
		HealthHandler:      healthHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("document store close failed", "error", err)
	}
	logger.Info("server stopped")
}
