package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/database"
	"github.com/envirohealth-ai/platform/pkg/common/kafka"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/lifestyle"
	"github.com/envirohealth-ai/platform/pkg/observability/metrics"
	"github.com/envirohealth-ai/platform/pkg/providers/airquality"
	"github.com/envirohealth-ai/platform/pkg/providers/soilresearch"
	"github.com/envirohealth-ai/platform/pkg/providers/waterresearch"
	"github.com/envirohealth-ai/platform/pkg/report"
	"github.com/envirohealth-ai/platform/pkg/risk"
	"github.com/gorilla/mux"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to postgres")
	}

	lifestyleRepo := lifestyle.NewRepository(db)
	if err := lifestyleRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate lifestyle tables")
	}
	reportRepo := report.NewRepository(db)
	if err := reportRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate report tables")
	}

	rulesCfg, err := risk.LoadRules(cfg.InteractionRulesPath)
	if err != nil {
		logger.Log.WithError(err).Warn("interaction rules not loaded, using defaults")
	}
	engine := risk.NewEngine(rulesCfg.Compile())

	producer := kafka.NewProducer(cfg.ReportsKafkaTopic)
	defer producer.Close()

	cache := report.NewCache(database.GetRedis(), cfg.ReportCacheTTL)

	lifestyleSvc := lifestyle.NewService(lifestyle.NewValidator(), lifestyleRepo)
	reportSvc := report.NewService(
		engine,
		airquality.NewClient(cfg),
		soilresearch.NewProvider(cfg),
		waterresearch.NewProvider(cfg),
		reportRepo,
		cache,
		producer,
		lifestyleSvc,
		cfg.ReportRetention,
	)

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	report.NewHTTPHandler(reportSvc, cfg.MaxRequestBody).Register(api)
	lifestyle.NewHTTPHandler(lifestyleSvc, cfg.MaxRequestBody).Register(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, "8081"),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": "8081",
		}).Info("Report Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := reportSvc.Cleanup(context.Background()); err != nil {
					logger.Log.WithError(err).Warn("report cleanup job failed")
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Report Service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("server forced to shutdown")
	}

	if err := database.CloseRedis(); err != nil {
		logger.Log.WithError(err).Warn("failed to close redis")
	}

	logger.Log.Info("Report Service stopped")
}
