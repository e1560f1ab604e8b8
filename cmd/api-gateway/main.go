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
	"github.com/envirohealth-ai/platform/pkg/common/httpclient"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/gateway/auth"
	"github.com/envirohealth-ai/platform/pkg/gateway/middleware"
	"github.com/envirohealth-ai/platform/pkg/gateway/routes"
	"github.com/envirohealth-ai/platform/pkg/observability/metrics"
	"github.com/gorilla/mux"
)

func main() {
	logger.Init()
	cfg := config.Load()

	oidcAuth, err := auth.NewOIDCAuthenticator(cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret)
	if err != nil {
		logger.Log.WithError(err).Warn("OIDC authentication not configured, running without auth")
	}

	router := mux.NewRouter()

	router.Use(middleware.Logging)
	router.Use(middleware.Recovery)
	if oidcAuth != nil {
		router.Use(middleware.Authenticate(oidcAuth))
	}
	router.Use(middleware.CORS)
	router.Use(middleware.RateLimit(cfg.GatewayRateLimitRPS, cfg.GatewayRateLimitBurst))
	router.Use(middleware.BodyLimit(cfg.MaxRequestBody))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	client := httpclient.New(cfg.GatewayRequestTimeout)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	routes.RegisterReportRoutes(apiRouter, &routes.ReportProxy{Client: client, Cfg: cfg})
	routes.RegisterAlertRoutes(apiRouter, &routes.AlertsProxy{Client: client, Cfg: cfg})

	if db, dbErr := database.GetPostgres(); dbErr == nil {
		routes.NewMetricsHandler(db).Register(apiRouter)
	} else {
		logger.Log.WithError(dbErr).Warn("postgres unavailable, overview metrics disabled")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("API Gateway started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down API Gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	logger.Log.Info("API Gateway stopped")
}
