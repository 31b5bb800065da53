package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hoursly/worklog-portal/internal/backend"
	"github.com/hoursly/worklog-portal/internal/config"
	appHTTP "github.com/hoursly/worklog-portal/internal/handler/http"
	"github.com/hoursly/worklog-portal/internal/pkg/latest"
	"github.com/hoursly/worklog-portal/internal/pkg/metrics"
	dashboardService "github.com/hoursly/worklog-portal/internal/service/dashboard"
	worklogService "github.com/hoursly/worklog-portal/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	backendURL, err := cfg.BackendURL()
	if err != nil {
		fmt.Println("Error parsing backend URL:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.Level(),
	})).With(
		slog.String("app", "worklog-portal"),
		slog.String("env", cfg.App.Env),
	)

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger, appMetrics)
	tracker := latest.NewTracker()

	dashboardSvc := dashboardService.NewDashboardService(client, tracker)
	worklogSvc := worklogService.NewWorklogService(client)

	authHandler := appHTTP.NewAuthHandler(client, cfg.Session.CookieName)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	worklogHandler := appHTTP.NewWorklogHandler(worklogSvc)
	apiProxy := appHTTP.NewBackendProxy(backendURL, logger)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.Level(),
		cfg.App.FrontendOrigin,
		cfg.Session.CookieName,
		client,
		appMetrics,
		authHandler,
		dashboardHandler,
		worklogHandler,
		apiProxy,
		metricsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
